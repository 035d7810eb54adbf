package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic pada handler supaya proses tetap
// hidup; request yang panic dijawab 500 dan stack trace dicatat ke log.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			log.Printf("[ERROR] 💥 Panic pada %s %s: %v\n%s", c.Method(), c.Path(), e, debug.Stack())
		},
	})
}
