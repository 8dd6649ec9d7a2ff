package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/auth"
)

// SetupStudentsRoutes sets up all students-related routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)

	classesAPI := app.Group("/api/classes")
	classesAPI.Use(auth.AuthMiddleware)
	classesAPI.Get("/", GetClassesAPI)
}
