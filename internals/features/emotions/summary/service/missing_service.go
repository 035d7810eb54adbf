package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emoclass_backend/internals/constants"
	checkinModel "emoclass_backend/internals/features/emotions/checkins/model"
	notifService "emoclass_backend/internals/features/home/notifications/service"
	studentModel "emoclass_backend/internals/features/school/students/model"
)

type MissingStats struct {
	TotalStudents    int    `json:"total_students"`
	MissingCount     int    `json:"missing_count"`
	MissingRate      int    `json:"missing_rate"`
	Priority         string `json:"priority"`
	TeachersNotified int    `json:"teachers_notified"`
}

// RunMissingCheckinReminder mencari siswa yang belum check-in hari ini,
// dikelompokkan per kelas. Tanpa siswa yang bolong, tidak ada notifikasi
// yang ditulis sama sekali.
func RunMissingCheckinReminder(db *gorm.DB) (*MissingStats, error) {
	teachers, err := notifService.ActiveTeacherIDs(db)
	if err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, ErrNoActiveTeachers
	}

	var students []studentModel.StudentModel
	if err := db.Preload("Class").Find(&students).Error; err != nil {
		return nil, err
	}

	todayStart := startOfDay(time.Now())
	var checkedIDs []uuid.UUID
	if err := db.Model(&checkinModel.EmotionCheckinModel{}).
		Where("created_at >= ?", todayStart).
		Pluck("student_id", &checkedIDs).Error; err != nil {
		return nil, err
	}
	checked := make(map[uuid.UUID]struct{}, len(checkedIDs))
	for _, id := range checkedIDs {
		checked[id] = struct{}{}
	}

	type missingEntry struct {
		Name  string `json:"name"`
		Class string `json:"class"`
	}
	var missing []missingEntry
	missingByClass := map[string]int{}
	classOrder := []string{}
	for _, s := range students {
		if _, ok := checked[s.ID]; ok {
			continue
		}
		className := "Tanpa Kelas"
		if s.Class != nil {
			className = s.Class.Name
		}
		if _, seen := missingByClass[className]; !seen {
			classOrder = append(classOrder, className)
		}
		missingByClass[className]++
		missing = append(missing, missingEntry{Name: s.Name, Class: className})
	}

	stats := &MissingStats{
		TotalStudents:    len(students),
		MissingCount:     len(missing),
		TeachersNotified: len(teachers),
	}
	if len(missing) == 0 {
		return stats, nil
	}

	stats.MissingRate = roundRate(len(missing), len(students))

	priority := constants.PriorityNormal
	if stats.MissingRate > 50 {
		priority = constants.PriorityUrgent
	} else if stats.MissingRate > 30 {
		priority = constants.PriorityHigh
	}
	stats.Priority = priority

	summaries := make([]string, 0, 3)
	for i, name := range classOrder {
		if i >= 3 {
			break
		}
		summaries = append(summaries, fmt.Sprintf("%s: %d siswa", name, missingByClass[name]))
	}
	classSummary := strings.Join(summaries, ", ")
	if extra := len(classOrder) - 3; extra > 0 {
		classSummary += fmt.Sprintf(" dan %d kelas lainnya", extra)
	}

	message := fmt.Sprintf("%d dari %d siswa (%d%%) belum melakukan check-in hari ini. %s. Mohon ingatkan siswa untuk check-in emosi.",
		len(missing), len(students), stats.MissingRate, classSummary)

	if _, err := notifService.CreateForTarget(db,
		notifService.TargetAllTeachers, nil,
		constants.NotificationTypeAlert, priority,
		"⏰ Reminder: Siswa Belum Check-in", message,
		map[string]any{
			"date":             todayStart.Format(time.RFC3339),
			"total_students":   len(students),
			"checked_in":       len(students) - len(missing),
			"missing_count":    len(missing),
			"missing_rate":     stats.MissingRate,
			"missing_by_class": missingByClass,
			"missing_students": missing,
		}, nil); err != nil {
		return nil, err
	}

	return stats, nil
}
