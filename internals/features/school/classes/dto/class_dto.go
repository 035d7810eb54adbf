package dto

import (
	"emoclass_backend/internals/features/school/classes/model"
)

// ================== REQUEST ==================
type ClassRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// ================== RESPONSE ==================
type ClassResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StudentCount int64  `json:"student_count"`
	CreatedAt    string `json:"created_at"`
}

// ================ CONVERSION =================
func ToClassResponse(m *model.ClassModel, studentCount int64) ClassResponse {
	return ClassResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		StudentCount: studentCount,
		CreatedAt:    m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
