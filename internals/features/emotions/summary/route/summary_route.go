package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/emotions/summary/controller"
)

// CronSummaryRoutes: semua endpoint di sini wajib lewat CronAuth di router induk.
func CronSummaryRoutes(cron fiber.Router, db *gorm.DB) {
	summaryCtrl := controller.NewSummaryController(db)

	// GET karena dipanggil penjadwal hosting (cron pinger), bukan form/JSON
	cron.Get("/daily-summary", summaryCtrl.DailySummary)
	cron.Get("/weekly-summary", summaryCtrl.WeeklySummary)
	cron.Get("/check-missing-checkins", summaryCtrl.MissingCheckins)
}
