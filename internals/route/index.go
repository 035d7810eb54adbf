package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emoclass_backend/internals/constants"
	alertRoute "emoclass_backend/internals/features/emotions/alerts/route"
	checkinRoute "emoclass_backend/internals/features/emotions/checkins/route"
	summaryRoute "emoclass_backend/internals/features/emotions/summary/route"
	notificationRoute "emoclass_backend/internals/features/home/notifications/route"
	iotRoute "emoclass_backend/internals/features/iot/route"
	classRoute "emoclass_backend/internals/features/school/classes/route"
	studentRoute "emoclass_backend/internals/features/school/students/route"
	authRoute "emoclass_backend/internals/features/users/auth/route"
	userRoute "emoclass_backend/internals/features/users/user/route"
	"emoclass_backend/internals/middlewares"
	authMiddleware "emoclass_backend/internals/middlewares/auth"
)

// SetupRoutes menyusun seluruh route aplikasi dalam empat lapis akses:
//   - /api     → publik (check-in kiosk, perangkat IoT, evaluasi alert)
//   - /api/u   → login (notifikasi milik user)
//   - /api/a   → admin
//   - /api/cron → scheduler eksternal (secret, bukan JWT)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	// Lapis publik: kiosk check-in siswa tidak punya akun
	api := app.Group("/api")
	checkinRoute.CheckinRoutes(api, db)
	alertRoute.AlertRoutes(api, db)
	iotRoute.IoTRoutes(api, db)

	// Lapis user login (guru & admin)
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("notifikasi"), constants.TeacherAndAbove...),
	)
	notificationRoute.UserNotificationRoutes(user, db)

	// Lapis admin
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen sekolah"), constants.AdminOnly...),
	)
	userRoute.AdminUserRoutes(admin, db)
	classRoute.AdminClassRoutes(admin, db)
	studentRoute.AdminStudentRoutes(admin, db)
	notificationRoute.AdminNotificationRoutes(admin, db)
	iotRoute.AdminDeviceRoutes(admin, db)

	// Lapis cron: dipicu penjadwal eksternal dengan bearer secret
	cron := app.Group("/api/cron", middlewares.CronAuth())
	summaryRoute.CronSummaryRoutes(cron, db)
}
