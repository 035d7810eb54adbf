package controller

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/home/notifications/dto"
	"emoclass_backend/internals/features/home/notifications/model"
	"emoclass_backend/internals/features/home/notifications/service"
	helper "emoclass_backend/internals/helpers"
	helperAuth "emoclass_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications — notifikasi milik user login (+ pagination & unread_count)
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count notifikasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var unread int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		log.Printf("[ERROR] Count unread: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil notifikasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "ok",
		"data":         dto.ToNotificationResponseList(notifs),
		"unread_count": unread,
		"pagination":   helper.BuildPagination(total, paging),
	})
}

// 🟢 POST /api/u/notifications/read/:id — tandai sudah dibaca
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": &now,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Mark as read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Notifikasi ditandai sudah dibaca", fiber.Map{"id": id})
}

// 🟢 POST /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": &now,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Mark all as read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}

	return helper.JsonUpdated(c, "Semua notifikasi ditandai sudah dibaca", fiber.Map{
		"updated": res.RowsAffected,
	})
}

// 🛑 DELETE /api/u/notifications/:id — hanya milik sendiri
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	res := ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Hapus notifikasi: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Notifikasi berhasil dihapus", fiber.Map{"id": id})
}

// 🟢 POST /api/a/notifications — notifikasi manual (admin / sistem lain)
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationError(err))
	}
	if req.Target == service.TargetSpecificUser && (req.UserID == nil || *req.UserID == uuid.Nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id wajib diisi saat target specific_user")
	}

	var metadata map[string]any
	if len(req.Metadata) > 0 {
		if err := json.Unmarshal(req.Metadata, &metadata); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format metadata tidak valid")
		}
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["source"] = "system"

	count, err := service.CreateForTarget(ctrl.DB, req.Target, req.UserID,
		req.Type, req.Priority, req.Title, req.Message, metadata, req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrNoRecipients) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada user penerima")
		}
		log.Printf("[ERROR] Gagal membuat notifikasi manual: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan notifikasi")
	}

	return helper.JsonCreated(c, "Notifikasi berhasil dikirim", fiber.Map{"count": count})
}
