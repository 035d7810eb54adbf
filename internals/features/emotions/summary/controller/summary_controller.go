package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/emotions/summary/service"
	helper "emoclass_backend/internals/helpers"
)

type SummaryController struct {
	DB *gorm.DB
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{DB: db}
}

// DailySummary dipicu scheduler eksternal tiap sore hari sekolah.
func (ctrl *SummaryController) DailySummary(c *fiber.Ctx) error {
	stats, err := service.RunDailySummary(ctrl.DB)
	if errors.Is(err, service.ErrNoActiveTeachers) {
		return helper.JsonOK(c, "Tidak ada guru aktif, ringkasan dilewati", nil)
	}
	if err != nil {
		log.Printf("[ERROR] Ringkasan harian gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ringkasan harian")
	}
	log.Printf("[SUCCESS] Ringkasan harian terkirim ke %d guru (rate %d%%)", stats.TeachersNotified, stats.CheckinRate)
	return helper.JsonOK(c, "Ringkasan harian berhasil dikirim", stats)
}

// WeeklySummary dipicu scheduler eksternal tiap akhir pekan.
func (ctrl *SummaryController) WeeklySummary(c *fiber.Ctx) error {
	stats, err := service.RunWeeklySummary(ctrl.DB)
	if errors.Is(err, service.ErrNoActiveTeachers) {
		return helper.JsonOK(c, "Tidak ada guru aktif, ringkasan dilewati", nil)
	}
	if err != nil {
		log.Printf("[ERROR] Ringkasan mingguan gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ringkasan mingguan")
	}
	log.Printf("[SUCCESS] Ringkasan mingguan terkirim ke %d guru (tren %s)", stats.TeachersNotified, stats.Trend)
	return helper.JsonOK(c, "Ringkasan mingguan berhasil dikirim", stats)
}

// MissingCheckins dipicu scheduler eksternal menjelang siang.
func (ctrl *SummaryController) MissingCheckins(c *fiber.Ctx) error {
	stats, err := service.RunMissingCheckinReminder(ctrl.DB)
	if errors.Is(err, service.ErrNoActiveTeachers) {
		return helper.JsonOK(c, "Tidak ada guru aktif, reminder dilewati", nil)
	}
	if err != nil {
		log.Printf("[ERROR] Reminder check-in gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat reminder check-in")
	}
	if stats.MissingCount == 0 {
		return helper.JsonOK(c, "Semua siswa sudah check-in hari ini", stats)
	}
	log.Printf("[SUCCESS] Reminder terkirim: %d siswa belum check-in (%d%%)", stats.MissingCount, stats.MissingRate)
	return helper.JsonOK(c, "Reminder berhasil dikirim", stats)
}
