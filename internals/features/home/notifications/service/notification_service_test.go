package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"emoclass_backend/internals/constants"
	notifModel "emoclass_backend/internals/features/home/notifications/model"
	userModel "emoclass_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&userModel.UserModel{}, &notifModel.NotificationModel{}); err != nil {
		t.Fatalf("gagal migrasi: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string, active bool) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Email:    email,
		Password: "hashed",
		FullName: email,
		Role:     role,
		IsActive: active,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("gagal buat user: %v", err)
	}
	return u
}

func TestActiveTeacherIDsSkipsInactiveAndAdmins(t *testing.T) {
	db := setupTestDB(t)
	aktif := seedUser(t, db, "guru@sekolah.id", constants.RoleTeacher, true)
	seedUser(t, db, "nonaktif@sekolah.id", constants.RoleTeacher, false)
	seedUser(t, db, "admin@sekolah.id", constants.RoleAdmin, true)

	ids, err := ActiveTeacherIDs(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(ids) != 1 || ids[0] != aktif.ID {
		t.Errorf("ids = %v, want hanya guru aktif", ids)
	}
}

func TestCreateForTargetAllTeachers(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "guru1@sekolah.id", constants.RoleTeacher, true)
	seedUser(t, db, "guru2@sekolah.id", constants.RoleTeacher, true)
	seedUser(t, db, "admin@sekolah.id", constants.RoleAdmin, true)

	count, err := CreateForTarget(db, TargetAllTeachers, nil,
		constants.NotificationTypeSystem, constants.PriorityNormal,
		"Pengumuman", "Rapat besok pagi",
		map[string]any{"source": "system"}, []string{"rapat"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (admin tidak termasuk)", count)
	}
}

func TestCreateForTargetAllUsersIncludesAdmins(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "guru@sekolah.id", constants.RoleTeacher, true)
	seedUser(t, db, "admin@sekolah.id", constants.RoleAdmin, true)
	seedUser(t, db, "nonaktif@sekolah.id", constants.RoleTeacher, false)

	count, err := CreateForTarget(db, TargetAllUsers, nil,
		constants.NotificationTypeSystem, constants.PriorityLow,
		"Info", "Maintenance malam ini", nil, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (user nonaktif dilewati)", count)
	}
}

func TestCreateForTargetSpecificUser(t *testing.T) {
	db := setupTestDB(t)
	guru := seedUser(t, db, "guru@sekolah.id", constants.RoleTeacher, true)

	count, err := CreateForTarget(db, TargetSpecificUser, &guru.ID,
		constants.NotificationTypeSystem, constants.PriorityNormal,
		"Pesan pribadi", "Tolong cek kelas 7A", nil, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	var n notifModel.NotificationModel
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("notifikasi tidak ada: %v", err)
	}
	if n.NotificationUserID != guru.ID {
		t.Errorf("user_id = %s, want %s", n.NotificationUserID, guru.ID)
	}
}

func TestCreateForTargetSpecificUserRequiresID(t *testing.T) {
	db := setupTestDB(t)
	if _, err := CreateForTarget(db, TargetSpecificUser, nil,
		constants.NotificationTypeSystem, constants.PriorityNormal,
		"x", "y", nil, nil); err == nil {
		t.Error("tanpa user_id harus error")
	}
	nilID := uuid.Nil
	if _, err := CreateForTarget(db, TargetSpecificUser, &nilID,
		constants.NotificationTypeSystem, constants.PriorityNormal,
		"x", "y", nil, nil); err == nil {
		t.Error("uuid nil harus error")
	}
}

func TestCreateForTargetNoRecipients(t *testing.T) {
	db := setupTestDB(t)
	_, err := CreateForTarget(db, TargetAllTeachers, nil,
		constants.NotificationTypeSystem, constants.PriorityNormal,
		"x", "y", nil, nil)
	if !errors.Is(err, ErrNoRecipients) {
		t.Errorf("err = %v, want ErrNoRecipients", err)
	}
}
