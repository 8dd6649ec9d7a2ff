package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
)

// GetStatsAPI returns the headline dashboard numbers.
func GetStatsAPI(c *fiber.Ctx) error {
	stats := database.GetDashboardStats(config.GetDB())
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
