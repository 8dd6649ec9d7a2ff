package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// UpsertResults writes a batch of subject results in one transaction.
// Re-entering marks for the same (student, exam, subject) overwrites
// the earlier record, matching the mark re-entry flow.
func UpsertResults(db *sql.DB, results []*models.SubjectResult) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO subject_results
				(student_id, exam_name, subject, obtained_marks, total_marks, percentage, grade, gpa)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (student_id, exam_name, subject) DO UPDATE SET
				obtained_marks = EXCLUDED.obtained_marks,
				total_marks = EXCLUDED.total_marks,
				percentage = EXCLUDED.percentage,
				grade = EXCLUDED.grade,
				gpa = EXCLUDED.gpa,
				deleted_at = NULL,
				updated_at = NOW()
			  RETURNING id`
	for _, r := range results {
		err := tx.QueryRow(query,
			r.StudentID, r.ExamName, strings.TrimSpace(r.Subject),
			r.ObtainedMarks, r.TotalMarks, r.Percentage, r.Grade, r.GPA,
		).Scan(&r.ID)
		if err != nil {
			return fmt.Errorf("failed to save result for student %s: %w", r.StudentID, err)
		}
	}

	return tx.Commit()
}

// GetResultsByExam returns all results for an exam, joined with the
// roster so summaries can show names and classes.
func GetResultsByExam(db *sql.DB, examName, className string) ([]*models.SubjectResult, error) {
	query := `SELECT r.id, r.student_id, s.first_name || ' ' || s.last_name, s.class_name,
				r.exam_name, r.subject, r.obtained_marks, r.total_marks, r.percentage, r.grade, r.gpa,
				r.created_at, r.updated_at
			  FROM subject_results r
			  JOIN students s ON r.student_id = s.id
			  WHERE r.exam_name = $1 AND s.class_name = $2
				AND r.deleted_at IS NULL AND s.is_active = true
			  ORDER BY s.first_name, s.last_name, r.subject`

	rows, err := db.Query(query, examName, className)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.SubjectResult
	for rows.Next() {
		r := &models.SubjectResult{}
		err := rows.Scan(
			&r.ID, &r.StudentID, &r.StudentName, &r.ClassName,
			&r.ExamName, &r.Subject, &r.ObtainedMarks, &r.TotalMarks,
			&r.Percentage, &r.Grade, &r.GPA, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// GetStudentResults returns a student's full assessment history across exams.
func GetStudentResults(db *sql.DB, studentID string) ([]*models.SubjectResult, error) {
	query := `SELECT id, student_id, exam_name, subject, obtained_marks, total_marks,
				percentage, grade, gpa, created_at, updated_at
			  FROM subject_results
			  WHERE student_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at DESC, subject`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.SubjectResult
	for rows.Next() {
		r := &models.SubjectResult{}
		err := rows.Scan(
			&r.ID, &r.StudentID, &r.ExamName, &r.Subject,
			&r.ObtainedMarks, &r.TotalMarks, &r.Percentage, &r.Grade, &r.GPA,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// DeleteResult soft-deletes a single result. The only way a result
// record leaves the store.
func DeleteResult(db *sql.DB, resultID string) error {
	result, err := db.Exec(`UPDATE subject_results SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, resultID)
	if err != nil {
		return err
	}
	return requireRow(result)
}
