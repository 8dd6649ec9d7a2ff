package exams

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

func GetExamsAPI(c *fiber.Ctx) error {
	exams, err := database.GetExams(config.GetDB(), c.Query("class"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exams")
	}
	return c.JSON(fiber.Map{"success": true, "data": exams})
}

func GetExamByIDAPI(c *fiber.Ctx) error {
	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exam")
	}
	return c.JSON(fiber.Map{"success": true, "data": exam})
}

// CreateExamAPI creates an exam with its required subject list. The
// subject list defines completeness for result aggregation.
func CreateExamAPI(c *fiber.Ctx) error {
	var exam models.Exam
	if err := c.BodyParser(&exam); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if exam.Name == "" || exam.ClassName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and class_name are required")
	}

	if err := database.CreateExam(config.GetDB(), &exam); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    exam,
		"message": "Exam created successfully",
	})
}

func UpdateExamAPI(c *fiber.Ctx) error {
	var exam models.Exam
	if err := c.BodyParser(&exam); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	exam.ID = c.Params("id")

	if err := database.UpdateExam(config.GetDB(), &exam); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Exam updated successfully"})
}

func DeleteExamAPI(c *fiber.Ctx) error {
	if err := database.DeleteExam(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Exam deleted successfully"})
}
