package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/emotions/alerts/service"
	helper "emoclass_backend/internals/helpers"
)

type AlertController struct {
	DB       *gorm.DB
	Telegram *service.TelegramClient
}

func NewAlertController(db *gorm.DB) *AlertController {
	return &AlertController{
		DB:       db,
		Telegram: service.NewTelegramClientFromEnv(),
	}
}

// 🟢 POST /api/check-alert  body: {"studentId": "..."}
// Key lama "student_id" masih diterima untuk klien kiosk versi awal.
// 400 kalau id kosong, 404 kalau siswa tidak ada, 500 kalau DB error.
func (ctrl *AlertController) CheckAlert(c *fiber.Ctx) error {
	var req struct {
		StudentID       uuid.UUID `json:"studentId"`
		StudentIDLegacy uuid.UUID `json:"student_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID required")
	}
	studentID := req.StudentID
	if studentID == uuid.Nil {
		studentID = req.StudentIDLegacy
	}
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID required")
	}

	result, err := service.EvaluateStudentAlert(ctrl.DB, ctrl.Telegram, studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[ERROR] Evaluasi alert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":              true,
		"alert":                result.Alert,
		"telegram_sent":        result.TelegramSent,
		"notification_created": result.NotificationCreated,
		"student":              result.StudentName,
		"class":                result.ClassName,
		"alert_type":           result.AlertType,
		"message":              result.Message,
	})
}
