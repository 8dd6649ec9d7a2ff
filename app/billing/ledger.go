package billing

import (
	"errors"
	"math"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// Validation errors surfaced to the collector before anything is
// written. A rejected payment never changes state.
var (
	ErrNoAmount    = errors.New("please enter an amount")
	ErrAlreadyPaid = errors.New("fee already fully collected, collectable once only")
	ErrExceedsDue  = errors.New("cannot collect more than due amount")
)

// ComputeLedger rolls a student's transaction history up into the fee
// account for the category their student type is billed under. Only
// completed transactions in that category count. The transaction log
// is the source of truth; the account is always derivable from it.
func ComputeLedger(transactions []*models.PaymentTransaction, studentType models.StudentType, schedule models.FeeSchedule) models.FeeAccount {
	category := models.CategoryForStudentType(studentType)
	expected := schedule.ExpectedFee(studentType)

	var paid, discount float64
	var studentID string
	for _, t := range transactions {
		if t.Status != models.PaymentCompleted || t.Category != category {
			continue
		}
		paid += paidAmountOf(t)
		discount += t.Discount
		studentID = t.StudentID
	}

	due := math.Max(0, expected-paid-discount)
	return models.FeeAccount{
		StudentID:     studentID,
		Category:      category,
		ExpectedFee:   expected,
		PaidAmount:    paid,
		TotalDiscount: discount,
		DueAmount:     due,
		Status:        statusFor(paid, due),
	}
}

// ApplyPayment validates a collection against the current account and
// returns the account state after it. Pure: the caller persists the
// transaction and the resulting state. New-admission fees are
// collectable once only and can never be overpaid.
func ApplyPayment(account models.FeeAccount, paidAmount, discount float64, studentType models.StudentType) (models.FeeAccount, error) {
	if paidAmount <= 0 {
		return account, ErrNoAmount
	}
	if studentType == models.NewAdmission {
		if account.Status == models.FeePaid {
			return account, ErrAlreadyPaid
		}
		if paidAmount > account.DueAmount+discount {
			return account, ErrExceedsDue
		}
	}

	next := account
	next.PaidAmount = account.PaidAmount + paidAmount
	next.TotalDiscount = account.TotalDiscount + discount
	next.DueAmount = math.Max(0, account.DueAmount-paidAmount-discount)
	next.Status = statusFor(next.PaidAmount, next.DueAmount)
	return next, nil
}

// statusFor derives the account status: paid once nothing is due and
// something was collected, due while nothing has been collected,
// partial in between.
func statusFor(paid, due float64) models.FeeStatus {
	switch {
	case due == 0 && paid > 0:
		return models.FeePaid
	case paid == 0:
		return models.FeeDue
	default:
		return models.FeePartial
	}
}

// paidAmountOf falls back to the gross amount on legacy records that
// never stored a separate paid amount.
func paidAmountOf(t *models.PaymentTransaction) float64 {
	if t.PaidAmount > 0 {
		return t.PaidAmount
	}
	return t.Amount
}
