package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	iotDTO "emoclass_backend/internals/features/iot/dto"
	iotModel "emoclass_backend/internals/features/iot/model"
	classModel "emoclass_backend/internals/features/school/classes/model"
	helper "emoclass_backend/internals/helpers"
)

type DeviceController struct {
	DB *gorm.DB
}

func NewDeviceController(db *gorm.DB) *DeviceController {
	return &DeviceController{DB: db}
}

// 🟢 GET /api/a/devices — semua perangkat + kelasnya
func (ctrl *DeviceController) GetAllDevices(c *fiber.Ctx) error {
	var devices []iotModel.IoTDeviceModel
	if err := ctrl.DB.Preload("Class").Order("created_at ASC").Find(&devices).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data perangkat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", devices)
}

// 🟢 POST /api/a/devices — daftarkan perangkat baru ke sebuah kelas
func (ctrl *DeviceController) CreateDevice(c *fiber.Ctx) error {
	var req iotDTO.DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.DeviceID = strings.TrimSpace(req.DeviceID)
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationError(err))
	}

	var kelas classModel.ClassModel
	if err := ctrl.DB.First(&kelas, "id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	device := iotModel.IoTDeviceModel{
		DeviceID: req.DeviceID,
		Name:     req.Name,
		ClassID:  req.ClassID,
		IsActive: true,
	}
	if req.IsActive != nil {
		device.IsActive = *req.IsActive
	}
	if err := ctrl.DB.Create(&device).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return helper.JsonError(c, fiber.StatusConflict, "Device ID sudah terdaftar")
		}
		log.Printf("[ERROR] Gagal menyimpan perangkat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perangkat")
	}

	return helper.JsonCreated(c, "Perangkat berhasil didaftarkan", device)
}

// 🟢 PUT /api/a/devices/:id
func (ctrl *DeviceController) UpdateDevice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var req iotDTO.DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.DeviceID = strings.TrimSpace(req.DeviceID)
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationError(err))
	}

	var device iotModel.IoTDeviceModel
	if err := ctrl.DB.First(&device, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Perangkat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var kelas classModel.ClassModel
	if err := ctrl.DB.First(&kelas, "id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	device.DeviceID = req.DeviceID
	device.Name = req.Name
	device.ClassID = req.ClassID
	if req.IsActive != nil {
		device.IsActive = *req.IsActive
	}
	if err := ctrl.DB.Save(&device).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return helper.JsonError(c, fiber.StatusConflict, "Device ID sudah terdaftar")
		}
		log.Printf("[ERROR] Gagal update perangkat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "Perangkat berhasil diperbarui", device)
}

// 🛑 DELETE /api/a/devices/:id — data sensornya ikut terhapus (cascade FK)
func (ctrl *DeviceController) DeleteDevice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	res := ctrl.DB.Delete(&iotModel.IoTDeviceModel{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus perangkat: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus perangkat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Perangkat tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Perangkat berhasil dihapus", fiber.Map{"id": id})
}
