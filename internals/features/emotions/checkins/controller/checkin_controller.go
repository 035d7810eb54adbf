package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"emoclass_backend/internals/constants"
	alertService "emoclass_backend/internals/features/emotions/alerts/service"
	"emoclass_backend/internals/features/emotions/checkins/dto"
	"emoclass_backend/internals/features/emotions/checkins/model"
	studentModel "emoclass_backend/internals/features/school/students/model"
	helper "emoclass_backend/internals/helpers"
)

type CheckinController struct {
	DB       *gorm.DB
	Telegram *alertService.TelegramClient
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{
		DB:       db,
		Telegram: alertService.NewTelegramClientFromEnv(),
	}
}

// 🟢 POST /api/checkins
// Simpan check-in; kalau emosinya "stressed", langsung evaluasi aturan
// alert secara sinkron dan lampirkan hasilnya di response.
func (ctrl *CheckinController) CreateCheckin(c *fiber.Ctx) error {
	var req dto.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationError(err))
	}

	// pastikan siswa ada
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	checkin := model.EmotionCheckinModel{
		StudentID: req.StudentID,
		Emotion:   req.Emotion,
		Note:      req.Note,
	}
	if err := ctrl.DB.Create(&checkin).Error; err != nil {
		// unique index (student_id, checkin_date): sudah check-in hari ini
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return helper.JsonError(c, fiber.StatusConflict, "Siswa sudah melakukan check-in hari ini")
		}
		log.Printf("[ERROR] Gagal menyimpan check-in: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	body := fiber.Map{
		"success": true,
		"message": "Check-in berhasil disimpan",
		"data":    dto.ToCheckinResponse(&checkin),
	}

	// evaluasi alert hanya untuk emosi negatif
	if req.Emotion == constants.EmotionStressed {
		result, err := alertService.EvaluateStudentAlert(ctrl.DB, ctrl.Telegram, req.StudentID)
		if err != nil {
			// check-in sudah tersimpan; kegagalan evaluasi cukup dicatat
			log.Printf("[ERROR] Evaluasi alert setelah check-in: %v", err)
		} else {
			body["alert"] = result
		}
	}

	return c.Status(fiber.StatusCreated).JSON(body)
}

// 🟢 GET /api/checkins/today/:studentId — probe "sudah check-in hari ini?"
func (ctrl *CheckinController) GetTodayCheckin(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format student ID tidak valid")
	}

	today := time.Now().Format("2006-01-02")
	var checkin model.EmotionCheckinModel
	err = ctrl.DB.
		Where("student_id = ? AND checkin_date = ?", studentID, today).
		First(&checkin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "Belum check-in hari ini", fiber.Map{"checked_in": false})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Sudah check-in hari ini", fiber.Map{
		"checked_in": true,
		"checkin":    dto.ToCheckinResponse(&checkin),
	})
}

// 🟢 GET /api/checkins  (?class_id=&date=YYYY-MM-DD, + pagination)
func (ctrl *CheckinController) GetCheckins(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EmotionCheckinModel{}).Preload("Student")
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("checkin_date = ?", date)
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format class_id tidak valid")
		}
		q = q.Where("student_id IN (?)",
			ctrl.DB.Model(&studentModel.StudentModel{}).Select("id").Where("class_id = ?", id))
	}
	if emotion := strings.TrimSpace(c.Query("emotion")); emotion != "" {
		if !constants.IsValidEmotion(emotion) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Emosi tidak dikenal")
		}
		q = q.Where("emotion = ?", emotion)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var checkins []model.EmotionCheckinModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&checkins).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil check-in: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", dto.ToCheckinResponseList(checkins), helper.BuildPagination(total, paging))
}

// 🟢 GET /api/checkins/dashboard — ringkasan hari ini untuk guru
func (ctrl *CheckinController) GetDashboard(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var todayCheckins []model.EmotionCheckinModel
	if err := ctrl.DB.Preload("Student").
		Where("checkin_date = ?", today).
		Order("created_at DESC").
		Find(&todayCheckins).Error; err != nil {
		log.Printf("[ERROR] Dashboard query: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var totalStudents int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	distribution := map[string]int64{
		constants.EmotionHappy:    0,
		constants.EmotionNormal:   0,
		constants.EmotionStressed: 0,
	}
	var needsAttention []dto.AttentionStudent
	for i := range todayCheckins {
		ci := &todayCheckins[i]
		distribution[ci.Emotion]++
		if ci.Emotion == constants.EmotionStressed {
			item := dto.AttentionStudent{
				StudentID: ci.StudentID.String(),
				Emotion:   ci.Emotion,
				Note:      ci.Note,
				Timestamp: ci.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			if ci.Student != nil {
				item.StudentName = ci.Student.Name
			}
			needsAttention = append(needsAttention, item)
		}
	}

	return helper.JsonOK(c, "ok", dto.DashboardResponse{
		EmotionDistribution: distribution,
		Progress: dto.DashboardProgress{
			CheckedIn: int64(len(todayCheckins)),
			Total:     totalStudents,
		},
		NeedsAttention: needsAttention,
	})
}
