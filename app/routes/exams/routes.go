package exams

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/auth"
)

// SetupExamRoutes sets up all exam-related routes
func SetupExamRoutes(app *fiber.App) {
	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetExamsAPI)
	api.Post("/", CreateExamAPI)
	api.Get("/:id", GetExamByIDAPI)
	api.Put("/:id", UpdateExamAPI)
	api.Delete("/:id", DeleteExamAPI)
}
