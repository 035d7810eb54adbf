package database

import (
	"log"

	"gorm.io/gorm"

	checkinModel "emoclass_backend/internals/features/emotions/checkins/model"
	notifModel "emoclass_backend/internals/features/home/notifications/model"
	iotModel "emoclass_backend/internals/features/iot/model"
	classModel "emoclass_backend/internals/features/school/classes/model"
	studentModel "emoclass_backend/internals/features/school/students/model"
	authModel "emoclass_backend/internals/features/users/auth/model"
	userModel "emoclass_backend/internals/features/users/user/model"
)

// GetAllModels: urutan penting, parent table dulu sebelum yang ber-FK.
func GetAllModels() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&checkinModel.EmotionCheckinModel{},
		&notifModel.NotificationModel{},
		&iotModel.IoTDeviceModel{},
		&iotModel.SensorReadingModel{},
	}
}

func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(GetAllModels()...); err != nil {
		log.Printf("❌ Migrasi gagal: %v", err)
		return err
	}
	log.Println("✅ Migrasi database selesai")
	return nil
}
