package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"emoclass_backend/internals/features/home/notifications/model"
)

// ================== REQUEST ==================

// CreateNotificationRequest dipakai endpoint admin untuk notifikasi manual.
// target: all_teachers | all_users | specific_user
type CreateNotificationRequest struct {
	Target   string          `json:"target" validate:"required,oneof=all_teachers all_users specific_user"`
	UserID   *uuid.UUID      `json:"user_id"`
	Type     string          `json:"type" validate:"required,oneof=alert system summary"`
	Priority string          `json:"priority" validate:"required,oneof=urgent high normal low"`
	Title    string          `json:"title" validate:"required,max=255"`
	Message  string          `json:"message" validate:"required"`
	Metadata json.RawMessage `json:"metadata"`
	Tags     []string        `json:"tags"`
}

// ================== RESPONSE ==================
type NotificationResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Priority  string          `json:"priority"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Tags      []string        `json:"tags,omitempty"`
	IsRead    bool            `json:"is_read"`
	ReadAt    *string         `json:"read_at,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// ================ CONVERSION =================
func ToNotificationResponse(m *model.NotificationModel) NotificationResponse {
	resp := NotificationResponse{
		ID:        m.NotificationID.String(),
		UserID:    m.NotificationUserID.String(),
		Type:      m.NotificationType,
		Priority:  m.NotificationPriority,
		Title:     m.NotificationTitle,
		Message:   m.NotificationMessage,
		Metadata:  json.RawMessage(m.NotificationMetadata),
		Tags:      m.NotificationTags,
		IsRead:    m.NotificationIsRead,
		CreatedAt: m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.NotificationReadAt != nil {
		s := m.NotificationReadAt.Format("2006-01-02 15:04:05")
		resp.ReadAt = &s
	}
	return resp
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, ToNotificationResponse(&models[i]))
	}
	return result
}
