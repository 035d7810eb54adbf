package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emoclass_backend/internals/constants"
	checkinModel "emoclass_backend/internals/features/emotions/checkins/model"
	notifService "emoclass_backend/internals/features/home/notifications/service"
	studentModel "emoclass_backend/internals/features/school/students/model"
)

const (
	AlertTypeStressed = "stressed"

	alertNotificationTitle = "🚨 Alert: Siswa Perlu Perhatian Khusus"
	alertPattern           = "3_consecutive_stressed"
)

var ErrStudentNotFound = errors.New("siswa tidak ditemukan")

// AlertResult: hasil evaluasi aturan + status dua efek samping fan-out.
// TelegramSent dan NotificationCreated independen — salah satu bisa
// gagal tanpa membatalkan yang lain (tidak ada transaksi).
type AlertResult struct {
	Alert               bool   `json:"alert"`
	AlertType           string `json:"alert_type,omitempty"`
	StudentName         string `json:"student,omitempty"`
	ClassName           string `json:"class,omitempty"`
	TelegramSent        bool   `json:"telegram_sent"`
	NotificationCreated bool   `json:"notification_created"`
	Message             string `json:"message"`
}

// EvaluateStudentAlert menjalankan aturan alert:
// 3 check-in TERAKHIR (urut created_at DESC, tanpa melihat jarak tanggal)
// semuanya "stressed" → alert + fan-out ke Telegram dan tabel notifications.
func EvaluateStudentAlert(db *gorm.DB, telegram *TelegramClient, studentID uuid.UUID) (*AlertResult, error) {
	var recent []checkinModel.EmotionCheckinModel
	if err := db.
		Select("emotion", "created_at").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(3).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	if len(recent) < 3 {
		return &AlertResult{
			Alert:   false,
			Message: fmt.Sprintf("Only %d check-ins found", len(recent)),
		}, nil
	}

	for _, ci := range recent {
		if ci.Emotion != constants.EmotionStressed {
			return &AlertResult{
				Alert:   false,
				Message: "Not 3 consecutive stressed emotions",
			}, nil
		}
	}

	// resolve nama siswa + kelas untuk isi pesan
	var student studentModel.StudentModel
	if err := db.Preload("Class").First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	className := "Unknown"
	if student.Class != nil {
		className = student.Class.Name
	}

	// Fan-out: dua efek independen, keduanya best-effort
	telegramSent := telegram.SendStressAlert(student.Name, className)
	notificationCreated := CreateAlertNotifications(db, student.Name, className, AlertTypeStressed)

	return &AlertResult{
		Alert:               true,
		AlertType:           AlertTypeStressed,
		StudentName:         student.Name,
		ClassName:           className,
		TelegramSent:        telegramSent,
		NotificationCreated: notificationCreated,
		Message:             fmt.Sprintf("🚨 Alert sent! 3 consecutive %s emotions detected.", AlertTypeStressed),
	}, nil
}

// CreateAlertNotifications menyisipkan satu notifikasi urgent per guru aktif.
// Return false kalau tidak ada guru aktif atau insert gagal.
func CreateAlertNotifications(db *gorm.DB, studentName, className, alertType string) bool {
	message := fmt.Sprintf(
		"Siswa %s dari kelas %s menunjukkan emosi sedih/tertekan selama 3 hari berturut-turut. Tindakan segera diperlukan.",
		studentName, className,
	)

	_, err := notifService.CreateForTarget(db,
		notifService.TargetAllTeachers, nil,
		constants.NotificationTypeAlert, constants.PriorityUrgent,
		alertNotificationTitle, message,
		map[string]any{
			"student_name": studentName,
			"class_name":   className,
			"alert_type":   alertType,
			"pattern":      alertPattern,
			"source":       "telegram_alert",
		}, nil)
	if err != nil {
		log.Printf("❌ Gagal membuat notifikasi alert: %v", err)
		return false
	}

	log.Println("✅ Notifikasi alert dibuat untuk semua guru aktif")
	return true
}
