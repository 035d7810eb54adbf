package dto

import (
	"github.com/google/uuid"

	"emoclass_backend/internals/features/school/students/model"
)

// ================== REQUEST ==================
type StudentRequest struct {
	Name    string    `json:"name" validate:"required,min=1,max=100"`
	ClassID uuid.UUID `json:"class_id" validate:"required"`
}

type UpdateStudentRequest struct {
	Name    *string    `json:"name" validate:"omitempty,min=1,max=100"`
	ClassID *uuid.UUID `json:"class_id"`
}

// BulkImportRequest menerima baris yang SUDAH diparse dari file Excel
// di sisi client; server hanya memvalidasi dan menyimpan.
type BulkImportRequest struct {
	ClassID uuid.UUID        `json:"class_id" validate:"required"`
	Rows    []BulkImportItem `json:"rows" validate:"required,min=1,dive"`
}

type BulkImportItem struct {
	Name string `json:"name"`
}

// ================== RESPONSE ==================
type StudentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClassID   string `json:"class_id"`
	ClassName string `json:"class_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ================ CONVERSION =================
func ToStudentResponse(m *model.StudentModel) StudentResponse {
	resp := StudentResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		ClassID:   m.ClassID.String(),
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.Class != nil {
		resp.ClassName = m.Class.Name
	}
	return resp
}

func ToStudentResponseList(models []model.StudentModel) []StudentResponse {
	result := make([]StudentResponse, 0, len(models))
	for i := range models {
		result = append(result, ToStudentResponse(&models[i]))
	}
	return result
}
