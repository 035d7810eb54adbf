package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/school/classes/dto"
	"emoclass_backend/internals/features/school/classes/model"
	studentModel "emoclass_backend/internals/features/school/students/model"
	helper "emoclass_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// 🟢 GET /api/a/classes — semua kelas + jumlah siswa
func (ctrl *ClassController) GetAllClasses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := ctrl.DB.Order("name ASC").Find(&classes).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// hitung siswa per kelas dalam satu query
	type classCount struct {
		ClassID uuid.UUID
		Total   int64
	}
	var counts []classCount
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("class_id, COUNT(*) AS total").
		Group("class_id").
		Scan(&counts).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung siswa per kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}
	countByClass := make(map[uuid.UUID]int64, len(counts))
	for _, cc := range counts {
		countByClass[cc.ClassID] = cc.Total
	}

	result := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		result = append(result, dto.ToClassResponse(&classes[i], countByClass[classes[i].ID]))
	}
	return helper.JsonOK(c, "ok", result)
}

// 🟢 POST /api/a/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationError(err))
	}

	newClass := model.ClassModel{Name: req.Name}
	if err := ctrl.DB.Create(&newClass).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		log.Printf("[ERROR] Gagal menyimpan kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.ToClassResponse(&newClass, 0))
}

// 🟢 PUT /api/a/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationError(err))
	}

	var kelas model.ClassModel
	if err := ctrl.DB.First(&kelas, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	kelas.Name = req.Name
	if err := ctrl.DB.Save(&kelas).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		log.Printf("[ERROR] Gagal update kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	var studentCount int64
	ctrl.DB.Model(&studentModel.StudentModel{}).Where("class_id = ?", kelas.ID).Count(&studentCount)

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.ToClassResponse(&kelas, studentCount))
}

// 🛑 DELETE /api/a/classes/:id — siswa ikut terhapus (cascade FK)
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.ClassModel{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus kelas: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"id": id})
}
