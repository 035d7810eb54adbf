package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/school/classes/controller"
)

func AdminClassRoutes(admin fiber.Router, db *gorm.DB) {
	classCtrl := controller.NewClassController(db)

	classes := admin.Group("/classes")
	classes.Get("/", classCtrl.GetAllClasses)
	classes.Post("/", classCtrl.CreateClass)
	classes.Put("/:id", classCtrl.UpdateClass)
	classes.Delete("/:id", classCtrl.DeleteClass)
}
