package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// MarkAttendanceAPI records one or more students' status for a day.
// Re-marking a student for the same day overwrites.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	var request struct {
		Date    string `json:"date"`
		Records []struct {
			StudentID string `json:"student_id"`
			Status    string `json:"status"`
		} `json:"records"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	markedBy := ""
	if name, ok := c.Locals("user_name").(string); ok {
		markedBy = name
	}

	saved := 0
	for _, r := range request.Records {
		a := &models.Attendance{
			StudentID: r.StudentID,
			Date:      date,
			Status:    models.AttendanceStatus(r.Status),
			MarkedBy:  markedBy,
		}
		if err := models.Validate(a); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance record for student "+r.StudentID)
		}
		if err := database.UpsertAttendance(config.GetDB(), a); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance")
		}
		saved++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance saved successfully",
		"count":   saved,
	})
}

// GetAttendanceAPI returns the records for a class on a date.
func GetAttendanceAPI(c *fiber.Ctx) error {
	className := c.Params("class")
	dateStr := c.Params("date")
	if className == "" || dateStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Class and date are required")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	records, err := database.GetAttendanceByClassAndDate(config.GetDB(), className, date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance records")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
		"count":   len(records),
		"date":    dateStr,
		"class":   className,
	})
}

// GetAttendanceReportAPI returns the per-student attendance rate
// roll-up for a class over a date range.
func GetAttendanceReportAPI(c *fiber.Ctx) error {
	className := c.Params("class")
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from is required as YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to is required as YYYY-MM-DD")
	}

	reports, err := database.GetAttendanceReport(config.GetDB(), className, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build attendance report")
	}

	return c.JSON(fiber.Map{"success": true, "data": reports})
}
