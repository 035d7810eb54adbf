package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"emoclass_backend/internals/constants"
	"emoclass_backend/internals/features/emotions/alerts/service"
	checkinModel "emoclass_backend/internals/features/emotions/checkins/model"
	notifModel "emoclass_backend/internals/features/home/notifications/model"
	classModel "emoclass_backend/internals/features/school/classes/model"
	studentModel "emoclass_backend/internals/features/school/students/model"
	userModel "emoclass_backend/internals/features/users/user/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("gagal ambil sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&checkinModel.EmotionCheckinModel{},
		&notifModel.NotificationModel{},
	); err != nil {
		t.Fatalf("gagal migrasi: %v", err)
	}

	tgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(tgSrv.Close)

	ctrl := &AlertController{
		DB:       db,
		Telegram: service.NewTelegramClient(tgSrv.URL, "test-token", "777", tgSrv.Client()),
	}

	app := fiber.New()
	app.Post("/api/check-alert", ctrl.CheckAlert)
	return app, db
}

func postCheckAlert(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/check-alert", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestCheckAlertMissingStudentID(t *testing.T) {
	app, _ := setupApp(t)
	resp := postCheckAlert(t, app, `{}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCheckAlertStudentNotFound(t *testing.T) {
	app, db := setupApp(t)

	// 3 check-in stressed milik siswa yang sudah dihapus
	ghostID := uuid.New()
	for d := 2; d >= 0; d-- {
		at := time.Now().AddDate(0, 0, -d)
		ci := checkinModel.EmotionCheckinModel{
			StudentID:   ghostID,
			Emotion:     constants.EmotionStressed,
			CheckinDate: at.Format("2006-01-02"),
			CreatedAt:   at,
		}
		if err := db.Create(&ci).Error; err != nil {
			t.Fatalf("gagal buat check-in: %v", err)
		}
	}

	// key lama "student_id" masih harus dikenali
	resp := postCheckAlert(t, app, fmt.Sprintf(`{"student_id":%q}`, ghostID))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCheckAlertEvaluates(t *testing.T) {
	app, db := setupApp(t)

	kelas := classModel.ClassModel{Name: "7A"}
	if err := db.Create(&kelas).Error; err != nil {
		t.Fatalf("gagal buat kelas: %v", err)
	}
	siswa := studentModel.StudentModel{Name: "Ahmad", ClassID: kelas.ID}
	if err := db.Create(&siswa).Error; err != nil {
		t.Fatalf("gagal buat siswa: %v", err)
	}
	for d := 2; d >= 0; d-- {
		at := time.Now().AddDate(0, 0, -d)
		ci := checkinModel.EmotionCheckinModel{
			StudentID:   siswa.ID,
			Emotion:     constants.EmotionStressed,
			CheckinDate: at.Format("2006-01-02"),
			CreatedAt:   at,
		}
		if err := db.Create(&ci).Error; err != nil {
			t.Fatalf("gagal buat check-in: %v", err)
		}
	}

	resp := postCheckAlert(t, app, fmt.Sprintf(`{"studentId":%q}`, siswa.ID))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["alert"] != true {
		t.Errorf("alert = %v, want true", body["alert"])
	}
	if body["student"] != "Ahmad" || body["class"] != "7A" {
		t.Errorf("siswa/kelas = %v/%v", body["student"], body["class"])
	}
	if body["telegram_sent"] != true {
		t.Errorf("telegram_sent = %v", body["telegram_sent"])
	}
}
