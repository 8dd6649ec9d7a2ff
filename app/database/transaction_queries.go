package database

import (
	"database/sql"
	"fmt"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// GetTransactionsByStudent returns a student's payment history for a
// category, newest first. This log is the source of truth the fee
// account is recomputed from.
func GetTransactionsByStudent(db *sql.DB, studentID string, category models.FeeCategory) ([]*models.PaymentTransaction, error) {
	query := `SELECT id, student_id, category, amount, paid_amount, discount, status,
				voucher_number, collected_by, payment_method, notes, date, created_at
			  FROM payment_transactions
			  WHERE student_id = $1 AND category = $2
			  ORDER BY date DESC`

	rows, err := db.Query(query, studentID, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.PaymentTransaction
	for rows.Next() {
		t := &models.PaymentTransaction{}
		var collectedBy, method, notes sql.NullString
		err := rows.Scan(
			&t.ID, &t.StudentID, &t.Category, &t.Amount, &t.PaidAmount, &t.Discount,
			&t.Status, &t.VoucherNumber, &collectedBy, &method, &notes,
			&t.Date, &t.CreatedAt,
		)
		if err != nil {
			continue
		}
		t.CollectedBy = collectedBy.String
		t.PaymentMethod = method.String
		t.Notes = notes.String
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// AppendTransaction records a fee collection. The voucher number is
// allocated from the atomic counter and the append runs in a single
// database transaction, so concurrent collectors can neither mint
// duplicate vouchers nor leave a half-written collection behind.
func AppendTransaction(db *sql.DB, t *models.PaymentTransaction, prefix, year string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if t.VoucherNumber == "" {
		seq, err := nextVoucherSeq(tx, prefix, year)
		if err != nil {
			return fmt.Errorf("failed to allocate voucher number: %w", err)
		}
		t.VoucherNumber = fmt.Sprintf("%s-%s-%03d", prefix, year, seq)
	}

	query := `INSERT INTO payment_transactions
				(student_id, category, amount, paid_amount, discount, status,
				 voucher_number, collected_by, payment_method, notes, date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
			  RETURNING id, date, created_at`
	err = tx.QueryRow(query,
		t.StudentID, string(t.Category), t.Amount, t.PaidAmount, t.Discount,
		string(t.Status), t.VoucherNumber, nullable(t.CollectedBy),
		nullable(t.PaymentMethod), nullable(t.Notes),
	).Scan(&t.ID, &t.Date, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return tx.Commit()
}

// nextVoucherSeq bumps the per-(prefix, year) counter and returns the
// new value. The upsert serializes concurrent allocators on the
// counter row, replacing the read-max-plus-one derivation that could
// hand two collectors the same number.
func nextVoucherSeq(tx *sql.Tx, prefix, year string) (int, error) {
	var seq int
	err := tx.QueryRow(`
		INSERT INTO voucher_counters (prefix, year, last_seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_seq = voucher_counters.last_seq + 1
		RETURNING last_seq
	`, prefix, year).Scan(&seq)
	return seq, err
}

// SeedVoucherCounter raises the counter to at least the highest
// sequence already present in the transaction history. Used once at
// boot so counters continue from vouchers issued before the counter
// table existed.
func SeedVoucherCounter(db *sql.DB, prefix, year string) error {
	_, err := db.Exec(`
		INSERT INTO voucher_counters (prefix, year, last_seq)
		SELECT $1, $2, COALESCE(MAX(NULLIF(SPLIT_PART(voucher_number, '-', 3), '')::INTEGER), 0)
		FROM payment_transactions
		WHERE voucher_number LIKE $1 || '-' || $2 || '-%'
		  AND SPLIT_PART(voucher_number, '-', 3) ~ '^[0-9]+$'
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_seq = GREATEST(voucher_counters.last_seq, EXCLUDED.last_seq)
	`, prefix, year)
	return err
}

// GetVoucherNumbers returns the voucher numbers already issued for a
// prefix and year, for the pure max-plus-one derivation.
func GetVoucherNumbers(db *sql.DB, prefix, year string) ([]string, error) {
	rows, err := db.Query(`SELECT voucher_number FROM payment_transactions
		WHERE voucher_number LIKE $1 || '-' || $2 || '-%'`, prefix, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vouchers []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			continue
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

// GetStudentsWithDues returns active students whose guardians should
// get a due reminder, with the amount still outstanding on their
// expected fee category.
func GetStudentsWithDues(db *sql.DB) ([]*models.Student, []float64, error) {
	query := `
		SELECT ` + studentColumns + `,
			GREATEST(0,
				CASE WHEN student_type = 'new_admission' THEN admission_fee ELSE session_fee END
				- COALESCE((
					SELECT SUM(CASE WHEN t.paid_amount > 0 THEN t.paid_amount ELSE t.amount END + t.discount)
					FROM payment_transactions t
					WHERE t.student_id = students.id
					  AND t.status = 'completed'
					  AND t.category = CASE WHEN student_type = 'new_admission' THEN 'admission' ELSE 'session' END
				), 0)
			) AS due_amount
		FROM students
		WHERE is_active = true AND deleted_at IS NULL AND guardian_phone IS NOT NULL`

	rows, err := db.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var students []*models.Student
	var dues []float64
	for rows.Next() {
		s := &models.Student{}
		var gender, guardianName, guardianPhone sql.NullString
		var due float64
		err := rows.Scan(
			&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.ClassName,
			&gender, &s.StudentType, &guardianName, &guardianPhone,
			&s.AdmissionFee, &s.SessionFee, &s.RegistrationFee,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt, &due,
		)
		if err != nil {
			continue
		}
		if due <= 0 {
			continue
		}
		s.Gender = models.Gender(gender.String)
		s.GuardianName = guardianName.String
		s.GuardianPhone = guardianPhone.String
		students = append(students, s)
		dues = append(dues, due)
	}
	return students, dues, nil
}
