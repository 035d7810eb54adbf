package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/features/users/user/controller"
)

func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", userCtrl.GetAllUsers)
	users.Post("/", userCtrl.CreateUser)
	users.Put("/:id", userCtrl.UpdateUser)
	users.Patch("/:id/active", userCtrl.SetUserActive)
	users.Delete("/:id", userCtrl.DeleteUser)
}
