package database

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

func GetExams(db *sql.DB, className string) ([]*models.Exam, error) {
	query := `SELECT e.id, e.name, e.class_name, e.start_date, e.end_date, e.is_active,
				e.created_at, e.updated_at,
				COALESCE(ARRAY_AGG(es.subject ORDER BY es.subject) FILTER (WHERE es.subject IS NOT NULL), '{}')
			  FROM exams e
			  LEFT JOIN exam_subjects es ON es.exam_id = e.id
			  WHERE e.deleted_at IS NULL`
	var args []interface{}
	if className != "" {
		query += ` AND e.class_name = $1`
		args = append(args, className)
	}
	query += ` GROUP BY e.id ORDER BY e.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			continue
		}
		exams = append(exams, e)
	}
	return exams, nil
}

func GetExamByID(db *sql.DB, examID string) (*models.Exam, error) {
	query := `SELECT e.id, e.name, e.class_name, e.start_date, e.end_date, e.is_active,
				e.created_at, e.updated_at,
				COALESCE(ARRAY_AGG(es.subject ORDER BY es.subject) FILTER (WHERE es.subject IS NOT NULL), '{}')
			  FROM exams e
			  LEFT JOIN exam_subjects es ON es.exam_id = e.id
			  WHERE e.id = $1 AND e.deleted_at IS NULL
			  GROUP BY e.id`
	return scanExam(db.QueryRow(query, examID))
}

func scanExam(row interface{ Scan(...interface{}) error }) (*models.Exam, error) {
	e := &models.Exam{}
	var start, end sql.NullTime
	var subjects pq.StringArray
	err := row.Scan(
		&e.ID, &e.Name, &e.ClassName, &start, &end, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt, &subjects,
	)
	if err != nil {
		return nil, err
	}
	if start.Valid {
		e.StartDate = &start.Time
	}
	if end.Valid {
		e.EndDate = &end.Time
	}
	e.RequiredSubjects = []string(subjects)
	return e, nil
}

func CreateExam(db *sql.DB, e *models.Exam) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO exams (name, class_name, start_date, end_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, is_active, created_at, updated_at`
	err = tx.QueryRow(query, e.Name, e.ClassName, e.StartDate, e.EndDate).Scan(
		&e.ID, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := writeExamSubjects(tx, e.ID, e.RequiredSubjects); err != nil {
		return err
	}
	return tx.Commit()
}

func UpdateExam(db *sql.DB, e *models.Exam) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE exams SET name = $1, class_name = $2, start_date = $3,
			end_date = $4, updated_at = NOW() WHERE id = $5 AND deleted_at IS NULL`,
		e.Name, e.ClassName, e.StartDate, e.EndDate, e.ID)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM exam_subjects WHERE exam_id = $1`, e.ID); err != nil {
		return err
	}
	if err := writeExamSubjects(tx, e.ID, e.RequiredSubjects); err != nil {
		return err
	}
	return tx.Commit()
}

func DeleteExam(db *sql.DB, examID string) error {
	result, err := db.Exec(`UPDATE exams SET deleted_at = NOW(), is_active = false WHERE id = $1`, examID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// GetRequiredSubjects returns the configured subject list for an exam
// and class. Missing configuration yields an empty list rather than an
// error, which makes every student trivially complete; callers treat
// that as the safe default.
func GetRequiredSubjects(db *sql.DB, examName, className string) ([]string, error) {
	query := `SELECT es.subject
			  FROM exam_subjects es
			  JOIN exams e ON es.exam_id = e.id
			  WHERE e.name = $1 AND e.class_name = $2 AND e.deleted_at IS NULL
			  ORDER BY es.subject`

	rows, err := db.Query(query, examName, className)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			continue
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

func writeExamSubjects(tx *sql.Tx, examID string, subjects []string) error {
	for _, subject := range subjects {
		subject = strings.TrimSpace(subject)
		if subject == "" {
			continue
		}
		_, err := tx.Exec(`INSERT INTO exam_subjects (exam_id, subject) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, examID, subject)
		if err != nil {
			return err
		}
	}
	return nil
}
