package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "emoclass_backend/internals/features/school/students/model"
)

// EmotionCheckinModel: satu laporan emosi per siswa per hari.
// Aturan "sekali sehari" ditegakkan di storage lewat unique index
// (student_id, checkin_date), bukan hanya pre-check di client —
// submit ganda yang lolos balapan di UI tetap ditolak DB.
type EmotionCheckinModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	StudentID   uuid.UUID `gorm:"column:student_id;type:uuid;not null;index;uniqueIndex:idx_checkin_student_date" json:"student_id"`
	Emotion     string    `gorm:"column:emotion;type:varchar(20);not null" json:"emotion"` // happy | normal | stressed
	Note        *string   `gorm:"column:note;size:100" json:"note,omitempty"`
	CheckinDate string    `gorm:"column:checkin_date;type:date;not null;uniqueIndex:idx_checkin_student_date" json:"checkin_date"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

func (EmotionCheckinModel) TableName() string {
	return "emotion_checkins"
}

func (m *EmotionCheckinModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CheckinDate == "" {
		m.CheckinDate = time.Now().Format("2006-01-02")
	}
	return nil
}
