package dto

import "github.com/google/uuid"

// ChannelReading: sepasang nilai analog (ADC 0-4095) + digital (0/1)
// seperti yang dikirim firmware ESP32.
type ChannelReading struct {
	Analog  int `json:"analog"`
	Digital int `json:"digital"`
}

type SensorPayload struct {
	DeviceID    string         `json:"deviceId" validate:"required"`
	Temperature *float64       `json:"temperature" validate:"required"`
	Humidity    float64        `json:"humidity"`
	Gas         ChannelReading `json:"gas"`
	Light       ChannelReading `json:"light"`
	Sound       ChannelReading `json:"sound"`
}

type DeviceRequest struct {
	DeviceID string    `json:"device_id" validate:"required,max=50"`
	Name     string    `json:"name" validate:"required,max=100"`
	ClassID  uuid.UUID `json:"class_id" validate:"required"`
	IsActive *bool     `json:"is_active"`
}
