package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SensorReadingModel: satu snapshot lingkungan dari perangkat terdaftar.
// Kolom analog menyimpan nilai ADC mentah (0-4095); konversi ke satuan
// fisik dilakukan saat baca, bukan saat simpan.
type SensorReadingModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	DeviceID     uuid.UUID `gorm:"column:device_id;type:uuid;not null;index" json:"device_id"`
	Temperature  float64   `gorm:"column:temperature;not null" json:"temperature"`
	Humidity     float64   `gorm:"column:humidity;not null" json:"humidity"`
	GasAnalog    int       `gorm:"column:gas_analog;not null" json:"gas_analog"`
	GasDigital   int       `gorm:"column:gas_digital;not null;default:0" json:"gas_digital"`
	LightAnalog  int       `gorm:"column:light_analog;not null" json:"light_analog"`
	LightDigital int       `gorm:"column:light_digital;not null;default:0" json:"light_digital"`
	SoundAnalog  int       `gorm:"column:sound_analog;not null" json:"sound_analog"`
	SoundDigital int       `gorm:"column:sound_digital;not null;default:0" json:"sound_digital"`
	RecordedAt   time.Time `gorm:"column:recorded_at;autoCreateTime;index" json:"recorded_at"`

	Device *IoTDeviceModel `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"device,omitempty"`
}

func (SensorReadingModel) TableName() string {
	return "sensor_readings"
}

func (m *SensorReadingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
