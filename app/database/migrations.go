package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates.
// Every statement is idempotent so the app can run this on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_code VARCHAR(50) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			class_name VARCHAR(100) NOT NULL,
			gender VARCHAR(10),
			student_type VARCHAR(20) NOT NULL DEFAULT 'regular',
			guardian_name VARCHAR(200),
			guardian_phone VARCHAR(30),
			admission_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			session_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			registration_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(200) NOT NULL,
			class_name VARCHAR(100) NOT NULL,
			start_date DATE,
			end_date DATE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (name, class_name)
		)`,
		`CREATE TABLE IF NOT EXISTS exam_subjects (
			exam_id UUID NOT NULL REFERENCES exams(id),
			subject VARCHAR(100) NOT NULL,
			PRIMARY KEY (exam_id, subject)
		)`,
		`CREATE TABLE IF NOT EXISTS subject_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			exam_name VARCHAR(200) NOT NULL,
			subject VARCHAR(100) NOT NULL,
			obtained_marks NUMERIC(6,2) NOT NULL,
			total_marks NUMERIC(6,2) NOT NULL,
			percentage NUMERIC(6,2) NOT NULL DEFAULT 0,
			grade VARCHAR(5) NOT NULL DEFAULT 'F',
			gpa NUMERIC(4,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (student_id, exam_name, subject)
		)`,
		`CREATE TABLE IF NOT EXISTS payment_transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			category VARCHAR(20) NOT NULL,
			amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			paid_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			discount NUMERIC(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'completed',
			voucher_number VARCHAR(50) UNIQUE NOT NULL,
			collected_by VARCHAR(200),
			payment_method VARCHAR(50),
			notes TEXT,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS voucher_counters (
			prefix VARCHAR(10) NOT NULL,
			year VARCHAR(4) NOT NULL,
			last_seq INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (prefix, year)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			marked_by VARCHAR(200),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_subject_results_exam ON subject_results (exam_name)`,
		`CREATE INDEX IF NOT EXISTS idx_subject_results_student ON subject_results (student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payment_transactions_student ON payment_transactions (student_id, category)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class ON students (class_name)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
