package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validator instance dipakai bersama oleh semua DTO
var Validate = validator.New()

// FormatValidationError mengubah error validator.v10 menjadi map field → pesan
// berbahasa Indonesia, siap dikirim lewat JsonValidationError.
func FormatValidationError(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"Input tidak valid"}
		return out
	}
	for _, fe := range ve {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fe.Field() + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = fe.Field() + " harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = fe.Field() + " harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = fe.Field() + " harus salah satu dari: " + fe.Param() + "."
		case "uuid":
			msg = fe.Field() + " harus berupa UUID yang valid."
		default:
			msg = "Format tidak valid."
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
