package results

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/grading"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// BatchSaveResults handles batch mark entry for one exam and subject.
// Grade, GPA and percentage are computed server-side from the marks;
// re-entry for the same student upserts.
func BatchSaveResults(c *fiber.Ctx) error {
	var request struct {
		ExamName   string  `json:"exam_name"`
		Subject    string  `json:"subject"`
		TotalMarks float64 `json:"total_marks"`
		Results    []struct {
			StudentID     string  `json:"student_id"`
			ObtainedMarks float64 `json:"obtained_marks"`
		} `json:"results"`
	}

	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	request.Subject = strings.TrimSpace(request.Subject)
	if request.ExamName == "" || request.Subject == "" {
		return fiber.NewError(fiber.StatusBadRequest, "exam_name and subject are required")
	}
	if request.TotalMarks <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "total_marks must be positive")
	}

	var results []*models.SubjectResult
	for _, r := range request.Results {
		if r.ObtainedMarks < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Marks cannot be negative")
		}
		if r.ObtainedMarks > request.TotalMarks {
			return fiber.NewError(fiber.StatusBadRequest, "Marks cannot exceed total marks")
		}

		band := grading.GradeFor(r.ObtainedMarks, request.TotalMarks)
		results = append(results, &models.SubjectResult{
			StudentID:     r.StudentID,
			ExamName:      request.ExamName,
			Subject:       request.Subject,
			ObtainedMarks: r.ObtainedMarks,
			TotalMarks:    request.TotalMarks,
			Percentage:    r.ObtainedMarks / request.TotalMarks * 100,
			Grade:         band.Grade,
			GPA:           band.GPA,
		})
	}

	if err := database.UpsertResults(config.GetDB(), results); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save results")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Results saved successfully",
		"count":   len(results),
	})
}

// GetResultsByExamAPI returns the raw per-subject results for an exam.
func GetResultsByExamAPI(c *fiber.Ctx) error {
	examName := c.Query("exam")
	className := c.Query("class")
	if examName == "" || className == "" {
		return fiber.NewError(fiber.StatusBadRequest, "exam and class are required")
	}

	results, err := database.GetResultsByExam(config.GetDB(), examName, className)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch results")
	}
	return c.JSON(fiber.Map{"success": true, "data": results})
}

// GetExamSummariesAPI returns the pivoted per-student summary table
// for an exam: one row per roster student with totals, overall grade,
// pass/fail and rank.
func GetExamSummariesAPI(c *fiber.Ctx) error {
	examName := c.Query("exam")
	className := c.Query("class")
	if examName == "" || className == "" {
		return fiber.NewError(fiber.StatusBadRequest, "exam and class are required")
	}

	db := config.GetDB()

	results, err := database.GetResultsByExam(db, examName, className)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch results")
	}

	students, err := database.GetStudentsByClass(db, className)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class roster")
	}
	roster := make([]grading.Roster, len(students))
	for i, s := range students {
		roster[i] = grading.Roster{
			StudentID:   s.ID,
			StudentName: s.FullName(),
			ClassName:   s.ClassName,
		}
	}

	// A failed config read falls back to no required subjects rather
	// than blocking the page; every student is then trivially complete.
	requiredSubjects, err := database.GetRequiredSubjects(db, examName, className)
	if err != nil {
		log.Printf("Failed to fetch required subjects for %s/%s, treating as empty: %v", examName, className, err)
		requiredSubjects = nil
	}

	opts := grading.Options{
		NameFilter: c.Query("name"),
		IDFilter:   c.Query("student"),
	}
	if c.Query("rank_incomplete") == "last" {
		opts.IncompleteRank = grading.RankIncompleteLast
	}

	summaries := grading.Aggregate(results, roster, requiredSubjects, opts)

	return c.JSON(fiber.Map{
		"success":           true,
		"exam":              examName,
		"class":             className,
		"required_subjects": requiredSubjects,
		"data":              summaries,
	})
}

// GetStudentResultsAPI returns a student's assessment history.
func GetStudentResultsAPI(c *fiber.Ctx) error {
	results, err := database.GetStudentResults(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student results")
	}
	return c.JSON(fiber.Map{"success": true, "data": results})
}

// DeleteResultAPI deletes a single result. The only way marks leave
// the store; nothing deletes them implicitly.
func DeleteResultAPI(c *fiber.Ctx) error {
	if err := database.DeleteResult(config.GetDB(), c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Result not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Result deleted successfully"})
}
