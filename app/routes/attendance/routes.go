package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/auth"
)

// SetupAttendanceRoutes sets up all attendance-related routes
func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)
	api.Post("/", MarkAttendanceAPI)
	api.Get("/:class/report", GetAttendanceReportAPI)
	api.Get("/:class/:date", GetAttendanceAPI)
}
