package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/emotions/alerts/controller"
)

func AlertRoutes(api fiber.Router, db *gorm.DB) {
	alertCtrl := controller.NewAlertController(db)

	api.Post("/check-alert", alertCtrl.CheckAlert)
}
