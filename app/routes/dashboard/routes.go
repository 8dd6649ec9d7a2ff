package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)
}
