package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/school/students/controller"
)

func AdminStudentRoutes(admin fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Get("/", studentCtrl.GetAllStudents)
	students.Post("/", studentCtrl.CreateStudent)
	students.Post("/bulk-import", studentCtrl.BulkImportStudents)
	students.Put("/:id", studentCtrl.UpdateStudent)
	students.Delete("/:id", studentCtrl.DeleteStudent)
}
