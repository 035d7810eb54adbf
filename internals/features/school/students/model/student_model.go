package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "emoclass_backend/internals/features/school/classes/model"
)

// StudentModel: tiap siswa milik tepat satu kelas.
// Hapus kelas → siswa ikut terhapus (cascade di level DB).
type StudentModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	ClassID   uuid.UUID `gorm:"column:class_id;type:uuid;not null;index" json:"class_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Class *classModel.ClassModel `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"class,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
