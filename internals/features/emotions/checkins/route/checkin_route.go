package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/emotions/checkins/controller"
)

func CheckinRoutes(api fiber.Router, db *gorm.DB) {
	checkinCtrl := controller.NewCheckinController(db)

	checkins := api.Group("/checkins")
	checkins.Post("/", checkinCtrl.CreateCheckin)
	checkins.Get("/", checkinCtrl.GetCheckins)
	checkins.Get("/dashboard", checkinCtrl.GetDashboard)
	checkins.Get("/today/:studentId", checkinCtrl.GetTodayCheckin)
}
