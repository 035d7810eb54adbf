package service

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"emoclass_backend/internals/constants"
	notifModel "emoclass_backend/internals/features/home/notifications/model"
	userModel "emoclass_backend/internals/features/users/user/model"
)

const (
	TargetAllTeachers  = "all_teachers"
	TargetAllUsers     = "all_users"
	TargetSpecificUser = "specific_user"
)

var ErrNoRecipients = errors.New("tidak ada user penerima")

// ActiveTeacherIDs mengambil id semua guru yang masih aktif.
func ActiveTeacherIDs(db *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = ?", constants.RoleTeacher, true).
		Pluck("id", &ids).Error
	return ids, err
}

// CreateForTarget membuat satu notifikasi per user sasaran dalam satu batch insert.
func CreateForTarget(db *gorm.DB, target string, userID *uuid.UUID, notifType, priority, title, message string, metadata map[string]any, tags []string) (int, error) {
	var targetIDs []uuid.UUID
	var err error

	switch target {
	case TargetAllTeachers:
		targetIDs, err = ActiveTeacherIDs(db)
	case TargetAllUsers:
		err = db.Model(&userModel.UserModel{}).
			Where("is_active = ?", true).
			Pluck("id", &targetIDs).Error
	case TargetSpecificUser:
		if userID == nil || *userID == uuid.Nil {
			return 0, errors.New("user_id wajib untuk target specific_user")
		}
		targetIDs = []uuid.UUID{*userID}
	default:
		return 0, errors.New("target tidak dikenal: " + target)
	}
	if err != nil {
		return 0, err
	}
	if len(targetIDs) == 0 {
		return 0, ErrNoRecipients
	}

	var metaJSON datatypes.JSON
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return 0, err
		}
		metaJSON = datatypes.JSON(raw)
	}

	notifs := make([]notifModel.NotificationModel, 0, len(targetIDs))
	for _, id := range targetIDs {
		notifs = append(notifs, notifModel.NotificationModel{
			NotificationUserID:   id,
			NotificationType:     notifType,
			NotificationPriority: priority,
			NotificationTitle:    title,
			NotificationMessage:  message,
			NotificationMetadata: metaJSON,
			NotificationTags:     tags,
		})
	}

	if err := db.Create(&notifs).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan notifikasi batch: %v", err)
		return 0, err
	}
	return len(notifs), nil
}
