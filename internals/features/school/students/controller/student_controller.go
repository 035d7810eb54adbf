package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "emoclass_backend/internals/features/school/classes/model"
	"emoclass_backend/internals/features/school/students/dto"
	"emoclass_backend/internals/features/school/students/model"
	helper "emoclass_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// 🟢 GET /api/a/students  (?class_id= untuk filter per kelas)
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.StudentModel{}).Preload("Class")
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format class_id tidak valid")
		}
		q = q.Where("class_id = ?", id)
	}

	var students []model.StudentModel
	if err := q.Order("name ASC").Find(&students).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data siswa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToStudentResponseList(students))
}

// 🟢 POST /api/a/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama siswa harus diisi")
	}
	if req.ClassID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas harus dipilih")
	}

	// pastikan kelas ada
	var kelas classModel.ClassModel
	if err := ctrl.DB.First(&kelas, "id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	student := model.StudentModel{
		Name:    req.Name,
		ClassID: req.ClassID,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan siswa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	student.Class = &kelas

	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.ToStudentResponse(&student))
}

// 🟢 PUT /api/a/students/:id — ganti nama / pindah kelas
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationError(err))
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.ClassID != nil && *req.ClassID != uuid.Nil {
		var kelas classModel.ClassModel
		if err := ctrl.DB.First(&kelas, "id = ?", *req.ClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Kelas tujuan tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
		}
		student.ClassID = *req.ClassID
	}

	if err := ctrl.DB.Save(&student).Error; err != nil {
		log.Printf("[ERROR] Gagal update siswa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "Data siswa berhasil diperbarui", dto.ToStudentResponse(&student))
}

// 🛑 DELETE /api/a/students/:id
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.StudentModel{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus siswa: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"id": id})
}

// 🟢 POST /api/a/students/bulk-import
// Validasi semua baris dulu; kalau ada yang invalid, tidak ada yang disimpan.
func (ctrl *StudentController) BulkImportStudents(c *fiber.Ctx) error {
	var req dto.BulkImportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if req.ClassID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas harus dipilih")
	}
	if len(req.Rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data siswa kosong atau format tidak valid")
	}

	var kelas classModel.ClassModel
	if err := ctrl.DB.First(&kelas, "id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	// Validasi per-baris (nomor baris mengikuti urutan file: baris data pertama = 2)
	var rowErrors []string
	students := make([]model.StudentModel, 0, len(req.Rows))
	for i, row := range req.Rows {
		rowNumber := i + 2
		name := strings.TrimSpace(row.Name)
		if name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Baris %d: Nama siswa tidak valid atau kosong", rowNumber))
			continue
		}
		students = append(students, model.StudentModel{
			Name:    name,
			ClassID: req.ClassID,
		})
	}

	if len(rowErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":     false,
			"message":     "Terdapat data yang tidak valid",
			"details":     rowErrors,
			"error_count": len(rowErrors),
		})
	}
	if len(students) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada data siswa yang valid untuk diimport")
	}

	// satu batch insert — gagal berarti tidak ada baris yang tersimpan
	if err := ctrl.DB.Create(&students).Error; err != nil {
		log.Printf("[ERROR] Bulk insert siswa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data siswa ke database")
	}

	return helper.JsonCreated(c,
		fmt.Sprintf("Berhasil mengimport %d siswa ke kelas %s", len(students), kelas.Name),
		fiber.Map{
			"count":    len(students),
			"students": dto.ToStudentResponseList(students),
		})
}
