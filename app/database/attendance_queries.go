package database

import (
	"database/sql"
	"time"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// UpsertAttendance records a student's status for a day; re-marking
// the same day overwrites.
func UpsertAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, date, status, marked_by)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (student_id, date) DO UPDATE SET
				status = EXCLUDED.status,
				marked_by = EXCLUDED.marked_by,
				updated_at = NOW()
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, a.StudentID, a.Date, string(a.Status), nullable(a.MarkedBy)).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
	)
}

func GetAttendanceByClassAndDate(db *sql.DB, className string, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, s.class_name, a.date, a.status, a.marked_by, a.created_at, a.updated_at
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  WHERE s.class_name = $1 AND a.date = $2 AND s.is_active = true
			  ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, className, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		var markedBy sql.NullString
		err := rows.Scan(&a.ID, &a.StudentID, &a.ClassName, &a.Date, &a.Status, &markedBy, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			continue
		}
		a.MarkedBy = markedBy.String
		records = append(records, a)
	}
	return records, nil
}

// GetAttendanceReport rolls attendance up per student for a class over
// a date range. Rate = present days / days marked; late counts as
// present for the rate, excused does not.
func GetAttendanceReport(db *sql.DB, className string, from, to time.Time) ([]*models.AttendanceReport, error) {
	query := `
		SELECT s.id, s.first_name || ' ' || s.last_name,
			COUNT(a.id),
			COUNT(a.id) FILTER (WHERE a.status = 'present'),
			COUNT(a.id) FILTER (WHERE a.status = 'absent'),
			COUNT(a.id) FILTER (WHERE a.status = 'late'),
			COUNT(a.id) FILTER (WHERE a.status = 'excused')
		FROM students s
		LEFT JOIN attendance a ON a.student_id = s.id AND a.date BETWEEN $2 AND $3
		WHERE s.class_name = $1 AND s.is_active = true AND s.deleted_at IS NULL
		GROUP BY s.id, s.first_name, s.last_name
		ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, className, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.AttendanceReport
	for rows.Next() {
		r := &models.AttendanceReport{}
		err := rows.Scan(&r.StudentID, &r.StudentName, &r.TotalDays,
			&r.PresentDays, &r.AbsentDays, &r.LateDays, &r.ExcusedDays)
		if err != nil {
			continue
		}
		if r.TotalDays > 0 {
			r.AttendanceRate = float64(r.PresentDays+r.LateDays) / float64(r.TotalDays) * 100
		}
		reports = append(reports, r)
	}
	return reports, nil
}
