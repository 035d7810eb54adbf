package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationModel merepresentasikan tabel notifications.
// Dibuat hanya oleh logika server (alert evaluator, aggregator, aksi admin);
// user pemilik hanya bisa flip status baca & hapus miliknya sendiri.
type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid" json:"id"`
	NotificationUserID    uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"user_id"`
	NotificationType      string         `gorm:"column:notification_type;type:varchar(20);not null" json:"type"`         // alert | system | summary
	NotificationPriority  string         `gorm:"column:notification_priority;type:varchar(10);not null" json:"priority"` // urgent | high | normal | low
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(255);not null" json:"title"`
	NotificationMessage   string         `gorm:"column:notification_message;type:text" json:"message"`
	NotificationMetadata  datatypes.JSON `gorm:"column:notification_metadata;type:jsonb" json:"metadata"`
	NotificationTags      pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"tags"`
	NotificationIsRead    bool           `gorm:"column:notification_is_read;not null;default:false" json:"is_read"`
	NotificationReadAt    *time.Time     `gorm:"column:notification_read_at" json:"read_at,omitempty"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
