package database

import "database/sql"

// DashboardStats is the landing-page summary.
type DashboardStats struct {
	TotalStudents    int     `json:"total_students"`
	TotalExams       int     `json:"total_exams"`
	TotalCollected   float64 `json:"total_collected"`
	TotalDiscounts   float64 `json:"total_discounts"`
	CollectionsToday int     `json:"collections_today"`
	PresentToday     int     `json:"present_today"`
	AbsentToday      int     `json:"absent_today"`
}

// GetDashboardStats aggregates the headline numbers. Errors are
// swallowed per metric so one failing query never blanks the page.
func GetDashboardStats(db *sql.DB) *DashboardStats {
	stats := &DashboardStats{}

	db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&stats.TotalStudents)
	db.QueryRow(`SELECT COUNT(*) FROM exams WHERE deleted_at IS NULL`).
		Scan(&stats.TotalExams)
	db.QueryRow(`SELECT COALESCE(SUM(CASE WHEN paid_amount > 0 THEN paid_amount ELSE amount END), 0),
				COALESCE(SUM(discount), 0)
			FROM payment_transactions WHERE status = 'completed'`).
		Scan(&stats.TotalCollected, &stats.TotalDiscounts)
	db.QueryRow(`SELECT COUNT(*) FROM payment_transactions
			WHERE status = 'completed' AND date::date = CURRENT_DATE`).
		Scan(&stats.CollectionsToday)
	db.QueryRow(`SELECT
				COUNT(*) FILTER (WHERE status IN ('present', 'late')),
				COUNT(*) FILTER (WHERE status = 'absent')
			FROM attendance WHERE date = CURRENT_DATE`).
		Scan(&stats.PresentToday, &stats.AbsentToday)

	return stats
}
