package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares memasang middleware dasar pada app (urutan penting)
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Memasang middleware dasar...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
