package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	iotModel "emoclass_backend/internals/features/iot/model"
	"emoclass_backend/internals/features/iot/service"
	helper "emoclass_backend/internals/helpers"
)

type EnvironmentController struct {
	DB *gorm.DB
}

func NewEnvironmentController(db *gorm.DB) *EnvironmentController {
	return &EnvironmentController{DB: db}
}

// GetCurrent mengambil bacaan sensor terbaru dari perangkat mana pun
// di kelas tersebut, lalu mengklasifikasikan kondisi lingkungannya.
func (ctrl *EnvironmentController) GetCurrent(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id wajib diisi")
	}

	var deviceIDs []uuid.UUID
	if err := ctrl.DB.Model(&iotModel.IoTDeviceModel{}).
		Where("class_id = ? AND is_active = ?", classID, true).
		Pluck("id", &deviceIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil perangkat")
	}
	if len(deviceIDs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":    false,
			"message":    "Kelas ini belum memiliki perangkat IoT",
			"has_device": false,
		})
	}

	var reading iotModel.SensorReadingModel
	err = ctrl.DB.Where("device_id IN ?", deviceIDs).
		Order("recorded_at DESC").
		First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":    false,
			"message":    "Belum ada data sensor",
			"has_device": true,
			"has_data":   false,
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sensor")
	}

	alert := service.AnalyzeEnvironment(service.EnvironmentInput{
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		GasAnalog:   reading.GasAnalog,
		LightAnalog: reading.LightAnalog,
		SoundAnalog: reading.SoundAnalog,
	})

	return helper.JsonOK(c, "Data lingkungan terkini", fiber.Map{
		"reading":     reading,
		"environment": alert,
		"has_device":  true,
		"has_data":    true,
	})
}
