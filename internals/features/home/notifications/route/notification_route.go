package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/home/notifications/controller"
)

// Route user: baca/kelola notifikasi milik sendiri
func UserNotificationRoutes(user fiber.Router, db *gorm.DB) {
	notifCtrl := controller.NewNotificationController(db)

	notif := user.Group("/notifications")
	notif.Get("/", notifCtrl.GetMyNotifications)
	notif.Post("/read/:id", notifCtrl.MarkAsRead)
	notif.Post("/read-all", notifCtrl.MarkAllAsRead)
	notif.Delete("/:id", notifCtrl.DeleteNotification)
}

// Route admin: notifikasi manual
func AdminNotificationRoutes(admin fiber.Router, db *gorm.DB) {
	notifCtrl := controller.NewNotificationController(db)

	notif := admin.Group("/notifications")
	notif.Post("/", notifCtrl.CreateNotification)
}
