package students

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// GetStudentsAPI returns the roster with optional filtering
func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		ClassName: c.Query("class"),
		Type:      c.Query("type"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}

	students, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return c.JSON(fiber.Map{"success": true, "data": student})
}

// CreateStudentAPI admits a new student. Student type defaults to
// new_admission, which bills the admission fee category.
func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if student.FirstName == "" || student.LastName == "" || student.ClassName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if student.StudentCode == "" {
		student.StudentCode = "STU-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if student.StudentType == "" {
		student.StudentType = models.NewAdmission
	}
	if err := models.Validate(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student: "+err.Error())
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student created successfully",
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	student.ID = c.Params("id")

	if err := database.UpdateStudent(config.GetDB(), &student); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student updated successfully"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Student deleted successfully"})
}

// GetClassesAPI lists the distinct class names on the roster.
func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetClassNames(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	return c.JSON(fiber.Map{"success": true, "data": classes})
}
