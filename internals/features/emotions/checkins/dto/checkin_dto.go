package dto

import (
	"github.com/google/uuid"

	"emoclass_backend/internals/features/emotions/checkins/model"
)

// ================== REQUEST ==================
type CheckinRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Emotion   string    `json:"emotion" validate:"required,oneof=happy normal stressed"`
	Note      *string   `json:"note" validate:"omitempty,max=100"`
}

// ================== RESPONSE ==================
type CheckinResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name,omitempty"`
	Emotion     string  `json:"emotion"`
	Note        *string `json:"note,omitempty"`
	CheckinDate string  `json:"checkin_date"`
	CreatedAt   string  `json:"created_at"`
}

// DashboardResponse: ringkasan hari ini untuk halaman guru
type DashboardResponse struct {
	EmotionDistribution map[string]int64   `json:"emotion_distribution"`
	Progress            DashboardProgress  `json:"progress"`
	NeedsAttention      []AttentionStudent `json:"students_needing_attention"`
}

type DashboardProgress struct {
	CheckedIn int64 `json:"checked_in"`
	Total     int64 `json:"total"`
}

type AttentionStudent struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	Emotion     string  `json:"emotion"`
	Note        *string `json:"note,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

// ================ CONVERSION =================
func ToCheckinResponse(m *model.EmotionCheckinModel) CheckinResponse {
	resp := CheckinResponse{
		ID:          m.ID.String(),
		StudentID:   m.StudentID.String(),
		Emotion:     m.Emotion,
		Note:        m.Note,
		CheckinDate: m.CheckinDate,
		CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.Student != nil {
		resp.StudentName = m.Student.Name
	}
	return resp
}

func ToCheckinResponseList(models []model.EmotionCheckinModel) []CheckinResponse {
	result := make([]CheckinResponse, 0, len(models))
	for i := range models {
		result = append(result, ToCheckinResponse(&models[i]))
	}
	return result
}
