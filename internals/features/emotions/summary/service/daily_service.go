package service

import (
	"errors"
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

var ErrNoActiveTeachers = errors.New("tidak ada guru aktif")

type DailyStats struct {
	TotalStudents    int   `json:"total_students"`
	CheckedInCount   int   `json:"checked_in_count"`
	CheckinRate      int   `json:"checkin_rate"`
	HappyCount       int   `json:"happy_count"`
	NormalCount      int   `json:"normal_count"`
	StressedCount    int   `json:"stressed_count"`
	Mood             string `json:"mood"`
	TeachersNotified int   `json:"teachers_notified"`
}

// startOfDay: tengah malam lokal hari ini
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func roundRate(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// RunDailySummary merangkum check-in hari ini (tengah malam → sekarang)
// dan menulis satu notifikasi summary/normal per guru aktif.
func RunDailySummary(db *gorm.DB) (*DailyStats, error) {
	teachers, err := notifService.ActiveTeacherIDs(db)
	if err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, ErrNoActiveTeachers
	}

	todayStart := startOfDay(time.Now())

	var totalStudents int64
	if err := db.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return nil, err
	}

	var checkins []checkinModel.EmotionCheckinModel
	if err := db.Select("student_id", "emotion").
		Where("created_at >= ?", todayStart).
		Find(&checkins).Error; err != nil {
		return nil, err
	}

	uniqueStudents := map[uuid.UUID]struct{}{}
	var happyCount, normalCount, stressedCount int
	for _, ci := range checkins {
		uniqueStudents[ci.StudentID] = struct{}{}
		switch ci.Emotion {
		case constants.EmotionHappy:
			happyCount++
		case constants.EmotionNormal:
			normalCount++
		case constants.EmotionStressed:
			stressedCount++
		}
	}

	checkedInCount := len(uniqueStudents)
	checkinRate := roundRate(checkedInCount, int(totalStudents))

	mood := "Netral"
	if happyCount > stressedCount && happyCount > normalCount {
		mood = "Positif 😊"
	} else if stressedCount > happyCount {
		mood = "Perlu Perhatian ⚠️"
	}

	attention := "Semua siswa dalam kondisi baik!"
	if stressedCount > 0 {
		attention = fmt.Sprintf("%d siswa perlu perhatian.", stressedCount)
	}
	message := fmt.Sprintf("Check-in hari ini: %d%% (%d/%d siswa). Mood kelas: %s. %s",
		checkinRate, checkedInCount, totalStudents, mood, attention)

	if _, err := notifService.CreateForTarget(db,
		notifService.TargetAllTeachers, nil,
		constants.NotificationTypeSummary, constants.PriorityNormal,
		"📊 Ringkasan Check-in Hari Ini", message,
		map[string]any{
			"date":            todayStart.Format(time.RFC3339),
			"total_students":  totalStudents,
			"checked_in":      checkedInCount,
			"checkin_rate":    checkinRate,
			"mood_positive":   happyCount,
			"mood_normal":     normalCount,
			"mood_negative":   stressedCount,
			"needs_attention": stressedCount,
		}, nil); err != nil {
		return nil, err
	}

	return &DailyStats{
		TotalStudents:    int(totalStudents),
		CheckedInCount:   checkedInCount,
		CheckinRate:      checkinRate,
		HappyCount:       happyCount,
		NormalCount:      normalCount,
		StressedCount:    stressedCount,
		Mood:             mood,
		TeachersNotified: len(teachers),
	}, nil
}
