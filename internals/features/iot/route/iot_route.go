package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/iot/controller"
	"emoclass_backend/internals/middlewares"
)

// IoTRoutes: endpoint publik untuk perangkat ESP32 (tanpa JWT,
// dibatasi rate limiter) + data lingkungan untuk dashboard.
func IoTRoutes(api fiber.Router, db *gorm.DB) {
	iotCtrl := controller.NewIoTController(db)
	envCtrl := controller.NewEnvironmentController(db)

	iot := api.Group("/iot", middlewares.IoTRateLimiter())
	iot.Post("/", iotCtrl.ReceiveRaw)
	iot.Get("/", iotCtrl.GetLatestRaw)
	iot.Post("/sensor", iotCtrl.IngestSensor)

	api.Get("/environment/current", envCtrl.GetCurrent)
}

// AdminDeviceRoutes: registrasi & pengelolaan perangkat per kelas.
func AdminDeviceRoutes(admin fiber.Router, db *gorm.DB) {
	deviceCtrl := controller.NewDeviceController(db)

	devices := admin.Group("/devices")
	devices.Get("/", deviceCtrl.GetAllDevices)
	devices.Post("/", deviceCtrl.CreateDevice)
	devices.Put("/:id", deviceCtrl.UpdateDevice)
	devices.Delete("/:id", deviceCtrl.DeleteDevice)
}
