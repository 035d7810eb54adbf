package controller

import (
	"errors"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/iot/dto"
	iotModel "emoclass_backend/internals/features/iot/model"
	helper "emoclass_backend/internals/helpers"
)

// latestRaw: payload mentah terakhir dari perangkat apa pun, disimpan di
// memori untuk debugging firmware. Diakses dari banyak goroutine Fiber
// sehingga wajib di bawah mutex.
var latestRaw struct {
	sync.RWMutex
	payload map[string]any
}

type IoTController struct {
	DB *gorm.DB
}

func NewIoTController(db *gorm.DB) *IoTController {
	return &IoTController{DB: db}
}

// ReceiveRaw menampung payload bebas dari perangkat tanpa menyentuh DB.
func (ctrl *IoTController) ReceiveRaw(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	latestRaw.Lock()
	latestRaw.payload = body
	latestRaw.Unlock()

	log.Printf("📥 Data IoT diterima: %v", body)
	return c.JSON(fiber.Map{"status": "ok", "received": body})
}

// GetLatestRaw mengembalikan payload mentah terakhir.
func (ctrl *IoTController) GetLatestRaw(c *fiber.Ctx) error {
	latestRaw.RLock()
	payload := latestRaw.payload
	latestRaw.RUnlock()

	if payload == nil {
		return c.JSON(fiber.Map{"error": "Belum ada data masuk"})
	}
	return c.JSON(payload)
}

// IngestSensor menyimpan snapshot sensor perangkat terdaftar.
// Perangkat dicari berdasarkan MAC address; yang belum terdaftar ditolak 404.
func (ctrl *IoTController) IngestSensor(c *fiber.Ctx) error {
	var req dto.SensorPayload
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tidak valid. Device ID dan temperature diperlukan.")
	}

	var device iotModel.IoTDeviceModel
	if err := ctrl.DB.Where("device_id = ?", req.DeviceID).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Device %s belum terdaftar", req.DeviceID)
			return helper.JsonError(c, fiber.StatusNotFound, "Device "+req.DeviceID+" belum terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa perangkat")
	}

	reading := iotModel.SensorReadingModel{
		DeviceID:     device.ID,
		Temperature:  *req.Temperature,
		Humidity:     req.Humidity,
		GasAnalog:    req.Gas.Analog,
		GasDigital:   req.Gas.Digital,
		LightAnalog:  req.Light.Analog,
		LightDigital: req.Light.Digital,
		SoundAnalog:  req.Sound.Analog,
		SoundDigital: req.Sound.Digital,
	}
	if err := ctrl.DB.Create(&reading).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan data sensor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data ke database")
	}

	log.Printf("✅ Data dari %s (kelas %s) berhasil disimpan", req.DeviceID, device.ClassID)
	return helper.JsonOK(c, "Data berhasil diterima dan disimpan", fiber.Map{
		"device_id": req.DeviceID,
		"class_id":  device.ClassID,
	})
}
