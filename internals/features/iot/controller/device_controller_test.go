package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	iotModel "emoclass_backend/internals/features/iot/model"
	classModel "emoclass_backend/internals/features/school/classes/model"
)

func setupDeviceApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	_, db := setupApp(t)

	deviceCtrl := NewDeviceController(db)
	envCtrl := NewEnvironmentController(db)

	app := fiber.New()
	app.Get("/api/a/devices", deviceCtrl.GetAllDevices)
	app.Post("/api/a/devices", deviceCtrl.CreateDevice)
	app.Put("/api/a/devices/:id", deviceCtrl.UpdateDevice)
	app.Delete("/api/a/devices/:id", deviceCtrl.DeleteDevice)
	app.Get("/api/environment/current", envCtrl.GetCurrent)
	return app, db
}

func TestCreateDeviceDuplicateMAC(t *testing.T) {
	app, db := setupDeviceApp(t)
	device := seedDevice(t, db, "AA:BB:CC:DD:EE:01")

	payload := fmt.Sprintf(`{"device_id":"AA:BB:CC:DD:EE:01","name":"Sensor Lain","class_id":%q}`, device.ClassID)
	resp := postJSON(t, app, "/api/a/devices", payload)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

// Perangkat yang didaftarkan sebagai nonaktif harus benar-benar tersimpan
// nonaktif dan tidak dipakai endpoint environment.
func TestCreateDeviceInactiveStaysInactive(t *testing.T) {
	app, db := setupDeviceApp(t)

	kelas := classModel.ClassModel{Name: "8B"}
	if err := db.Create(&kelas).Error; err != nil {
		t.Fatalf("gagal buat kelas: %v", err)
	}

	payload := fmt.Sprintf(`{"device_id":"AA:BB:CC:DD:EE:02","name":"Sensor 8B","class_id":%q,"is_active":false}`, kelas.ID)
	resp := postJSON(t, app, "/api/a/devices", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var device iotModel.IoTDeviceModel
	if err := db.First(&device, "device_id = ?", "AA:BB:CC:DD:EE:02").Error; err != nil {
		t.Fatalf("device tidak tersimpan: %v", err)
	}
	if device.IsActive {
		t.Error("is_active = true, want false (nilai eksplisit tidak boleh ditimpa default)")
	}

	// kelas hanya punya perangkat nonaktif → dianggap tanpa perangkat
	req := httptest.NewRequest(http.MethodGet, "/api/environment/current?class_id="+kelas.ID.String(), nil)
	envResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if envResp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", envResp.StatusCode)
	}
	body := decodeBody(t, envResp)
	if hasDevice, ok := body["has_device"].(bool); !ok || hasDevice {
		t.Errorf("has_device = %v, want false", body["has_device"])
	}
}
