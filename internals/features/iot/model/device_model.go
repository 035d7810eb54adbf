package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "emoclass_backend/internals/features/school/classes/model"
)

// IoTDeviceModel: registrasi perangkat sensor per kelas.
// DeviceID adalah MAC address yang dipakai perangkat saat lapor.
type IoTDeviceModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	DeviceID  string    `gorm:"column:device_id;size:50;not null;unique" json:"device_id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	ClassID   uuid.UUID `gorm:"column:class_id;type:uuid;not null;index" json:"class_id"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Class *classModel.ClassModel `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"class,omitempty"`
}

func (IoTDeviceModel) TableName() string {
	return "iot_devices"
}

func (m *IoTDeviceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
