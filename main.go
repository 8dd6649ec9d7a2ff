package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/attendance"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/auth"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/dashboard"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/exams"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/fees"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/results"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/students"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/services"
)

// apiErrorHandler turns fiber errors into the JSON error envelope
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize configuration and database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Continue voucher sequences from any history written before the
	// counter table existed
	year := strconv.Itoa(time.Now().Year())
	for _, category := range []models.FeeCategory{models.AdmissionFee, models.SessionFee} {
		if err := database.SeedVoucherCounter(config.GetDB(), category.VoucherPrefix(), year); err != nil {
			log.Printf("Failed to seed voucher counter for %s: %v", category, err)
		}
	}

	// Wire the SMS gateway and start the reminder scheduler
	services.SetGateway(services.GatewayFromConfig(config.AppConfig.SMS))
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	exams.SetupExamRoutes(app)
	results.SetupResultsRoutes(app)
	fees.SetupFeesRoutes(app)
	attendance.SetupAttendanceRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	addr := ":8080"
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		addr = ":" + port
	}
	log.Println("Server starting on " + addr)
	log.Fatal(app.Listen(addr))
}
