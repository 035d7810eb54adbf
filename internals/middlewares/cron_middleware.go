package middlewares

import (
	"crypto/subtle"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"emoclass_backend/internals/configs"
)

// CronAuth memverifikasi header "Authorization: Bearer <CRON_SECRET>"
// untuk endpoint terjadwal. Salah/kosong → 401.
func CronAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.CronSecret
		if secret == "" {
			log.Println("[ERROR] CRON_SECRET kosong, semua request cron ditolak")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		auth := strings.TrimSpace(c.Get("Authorization"))
		expected := "Bearer " + secret
		if subtle.ConstantTimeCompare([]byte(auth), []byte(expected)) != 1 {
			log.Printf("[WARNING] Cron auth gagal: %s %s", c.Method(), c.OriginalURL())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
