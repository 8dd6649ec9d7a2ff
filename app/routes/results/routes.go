package results

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/auth"
)

// SetupResultsRoutes sets up all results-related routes
func SetupResultsRoutes(app *fiber.App) {
	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetResultsByExamAPI)
	api.Post("/batch", BatchSaveResults)
	api.Get("/summaries", GetExamSummariesAPI)
	api.Get("/student/:id", GetStudentResultsAPI)
	api.Delete("/:id", DeleteResultAPI)
}
