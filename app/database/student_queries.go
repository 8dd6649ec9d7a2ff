package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// StudentFilters represents filtering options for the roster listing.
type StudentFilters struct {
	Search    string
	ClassName string
	Type      string
	Limit     int
	Offset    int
}

const studentColumns = `id, student_code, first_name, last_name, class_name, gender, student_type,
	guardian_name, guardian_phone, admission_fee, session_fee, registration_fee,
	is_active, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var gender, guardianName, guardianPhone sql.NullString
	err := row.Scan(
		&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.ClassName,
		&gender, &s.StudentType, &guardianName, &guardianPhone,
		&s.AdmissionFee, &s.SessionFee, &s.RegistrationFee,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Gender = models.Gender(gender.String)
	s.GuardianName = guardianName.String
	s.GuardianPhone = guardianPhone.String
	return s, nil
}

func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE is_active = true AND deleted_at IS NULL`
	var args []interface{}

	if filters.ClassName != "" {
		args = append(args, filters.ClassName)
		query += fmt.Sprintf(" AND class_name = $%d", len(args))
	}
	if filters.Type != "" {
		args = append(args, filters.Type)
		query += fmt.Sprintf(" AND student_type = $%d", len(args))
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		query += fmt.Sprintf(` AND (LOWER(student_code) LIKE $%d
			OR LOWER(first_name || ' ' || last_name) LIKE $%d)`, n, n)
	}

	query += " ORDER BY class_name, first_name, last_name"
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			continue
		}
		students = append(students, s)
	}
	return students, nil
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, studentID))
}

// GetStudentsByClass returns the active roster for a class, the scope
// result summaries are ranked over.
func GetStudentsByClass(db *sql.DB, className string) ([]*models.Student, error) {
	return GetStudents(db, StudentFilters{ClassName: className})
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_code, first_name, last_name, class_name, gender,
				student_type, guardian_name, guardian_phone, admission_fee, session_fee, registration_fee)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query,
		s.StudentCode, s.FirstName, s.LastName, s.ClassName, nullable(string(s.Gender)),
		string(s.StudentType), nullable(s.GuardianName), nullable(s.GuardianPhone),
		s.AdmissionFee, s.SessionFee, s.RegistrationFee,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET first_name = $1, last_name = $2, class_name = $3, gender = $4,
				student_type = $5, guardian_name = $6, guardian_phone = $7,
				admission_fee = $8, session_fee = $9, registration_fee = $10, updated_at = NOW()
			  WHERE id = $11 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		s.FirstName, s.LastName, s.ClassName, nullable(string(s.Gender)),
		string(s.StudentType), nullable(s.GuardianName), nullable(s.GuardianPhone),
		s.AdmissionFee, s.SessionFee, s.RegistrationFee, s.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func DeleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(`UPDATE students SET deleted_at = NOW(), is_active = false WHERE id = $1`, studentID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// GetClassNames lists the distinct classes with active students.
func GetClassNames(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT class_name FROM students
		WHERE is_active = true AND deleted_at IS NULL ORDER BY class_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		classes = append(classes, name)
	}
	return classes, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
