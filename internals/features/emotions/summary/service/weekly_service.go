package service

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emoclass_backend/internals/constants"
	checkinModel "emoclass_backend/internals/features/emotions/checkins/model"
	notifService "emoclass_backend/internals/features/home/notifications/service"
	studentModel "emoclass_backend/internals/features/school/students/model"
)

type WeeklyStats struct {
	TotalStudents     int    `json:"total_students"`
	ActiveStudents    int    `json:"active_students"`
	ParticipationRate int    `json:"participation_rate"`
	TotalCheckins     int    `json:"total_checkins"`
	AvgDaily          int    `json:"avg_daily"`
	PositiveRate      int    `json:"positive_rate"`
	NegativeRate      int    `json:"negative_rate"`
	Trend             string `json:"trend"`
	ConcerningCount   int    `json:"concerning_count"`
	TeachersNotified  int    `json:"teachers_notified"`
}

// RunWeeklySummary merangkum 7 hari check-in terakhir: tingkat partisipasi
// (siswa unik yang check-in vs total siswa), tren emosi, dan siswa dengan
// >= 3 emosi negatif dalam seminggu ("perlu perhatian", menaikkan
// prioritas notifikasi menjadi high).
func RunWeeklySummary(db *gorm.DB) (*WeeklyStats, error) {
	teachers, err := notifService.ActiveTeacherIDs(db)
	if err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, ErrNoActiveTeachers
	}

	weekStart := startOfDay(time.Now().AddDate(0, 0, -7))

	var totalStudents int64
	if err := db.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return nil, err
	}

	var checkins []checkinModel.EmotionCheckinModel
	if err := db.Select("student_id", "emotion").
		Where("created_at >= ?", weekStart).
		Find(&checkins).Error; err != nil {
		return nil, err
	}

	total := len(checkins)
	var happyCount, negativeCount int
	activeSet := map[uuid.UUID]struct{}{}
	negativePerStudent := map[uuid.UUID]int{}
	for _, ci := range checkins {
		activeSet[ci.StudentID] = struct{}{}
		switch ci.Emotion {
		case constants.EmotionHappy:
			happyCount++
		case constants.EmotionStressed, "sad":
			negativeCount++
			negativePerStudent[ci.StudentID]++
		}
	}
	activeStudents := len(activeSet)
	participationRate := roundRate(activeStudents, int(totalStudents))

	concerning := 0
	for _, n := range negativePerStudent {
		if n >= 3 {
			concerning++
		}
	}

	avgDaily := int(math.Round(float64(total) / 7))

	// Tren dibandingkan terhadap rate mentah, bukan hasil pembulatan:
	// 60,4% positif tetap dihitung > 60.
	var positiveRateRaw, negativeRateRaw float64
	if total > 0 {
		positiveRateRaw = float64(happyCount) / float64(total) * 100
		negativeRateRaw = float64(negativeCount) / float64(total) * 100
	}
	trend, emoji := "Stabil", "📊"
	if positiveRateRaw > 60 {
		trend, emoji = "Positif", "📈"
	} else if negativeRateRaw > 30 {
		trend, emoji = "Perlu Perhatian", "📉"
	}
	positiveRate := roundRate(happyCount, total)
	negativeRate := roundRate(negativeCount, total)

	attention := "Semua siswa menunjukkan pola emosi yang sehat."
	if concerning > 0 {
		attention = fmt.Sprintf("%d siswa perlu perhatian khusus minggu ini.", concerning)
	}
	message := fmt.Sprintf("Partisipasi: %d%% (%d/%d siswa). Rata-rata %d check-in/hari. Tren emosi: %s (%d%% positif, %d%% negatif). %s",
		participationRate, activeStudents, int(totalStudents), avgDaily, trend, positiveRate, negativeRate, attention)

	priority := constants.PriorityNormal
	if concerning > 0 {
		priority = constants.PriorityHigh
	}

	if _, err := notifService.CreateForTarget(db,
		notifService.TargetAllTeachers, nil,
		constants.NotificationTypeSummary, priority,
		fmt.Sprintf("%s Ringkasan Mingguan (7 Hari Terakhir)", emoji), message,
		map[string]any{
			"period_start":       weekStart.Format(time.RFC3339),
			"total_students":     int(totalStudents),
			"active_students":    activeStudents,
			"participation_rate": participationRate,
			"total_checkins":     total,
			"avg_daily":          avgDaily,
			"positive_rate":      positiveRate,
			"negative_rate":      negativeRate,
			"trend":              trend,
			"concerning_count":   concerning,
		}, nil); err != nil {
		return nil, err
	}

	return &WeeklyStats{
		TotalStudents:     int(totalStudents),
		ActiveStudents:    activeStudents,
		ParticipationRate: participationRate,
		TotalCheckins:     total,
		AvgDaily:          avgDaily,
		PositiveRate:      positiveRate,
		NegativeRate:      negativeRate,
		Trend:             trend,
		ConcerningCount:   concerning,
		TeachersNotified:  len(teachers),
	}, nil
}
