package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

func tx(category models.FeeCategory, status models.PaymentStatus, paid, discount float64) *models.PaymentTransaction {
	return &models.PaymentTransaction{
		StudentID:  "s1",
		Category:   category,
		PaidAmount: paid,
		Discount:   discount,
		Status:     status,
	}
}

func TestComputeLedgerNewAdmission(t *testing.T) {
	schedule := models.FeeSchedule{AdmissionFee: 1000, SessionFee: 500}
	transactions := []*models.PaymentTransaction{
		tx(models.AdmissionFee, models.PaymentCompleted, 300, 0),
		tx(models.AdmissionFee, models.PaymentCompleted, 200, 100),
		tx(models.AdmissionFee, models.PaymentPending, 400, 0),  // not completed
		tx(models.SessionFee, models.PaymentCompleted, 999, 0),  // wrong category
	}

	account := ComputeLedger(transactions, models.NewAdmission, schedule)
	assert.Equal(t, models.AdmissionFee, account.Category)
	assert.Equal(t, 1000.0, account.ExpectedFee)
	assert.Equal(t, 500.0, account.PaidAmount)
	assert.Equal(t, 100.0, account.TotalDiscount)
	assert.Equal(t, 400.0, account.DueAmount)
	assert.Equal(t, models.FeePartial, account.Status)
}

func TestComputeLedgerStatuses(t *testing.T) {
	schedule := models.FeeSchedule{SessionFee: 500}

	account := ComputeLedger(nil, models.Regular, schedule)
	assert.Equal(t, models.FeeDue, account.Status)
	assert.Equal(t, 500.0, account.DueAmount)

	account = ComputeLedger([]*models.PaymentTransaction{
		tx(models.SessionFee, models.PaymentCompleted, 500, 0),
	}, models.Regular, schedule)
	assert.Equal(t, models.FeePaid, account.Status)
	assert.Equal(t, 0.0, account.DueAmount)
}

func TestComputeLedgerLegacyAmountFallback(t *testing.T) {
	schedule := models.FeeSchedule{SessionFee: 500}
	legacy := &models.PaymentTransaction{
		StudentID: "s1",
		Category:  models.SessionFee,
		Amount:    200, // no separate paid amount recorded
		Status:    models.PaymentCompleted,
	}

	account := ComputeLedger([]*models.PaymentTransaction{legacy}, models.Regular, schedule)
	assert.Equal(t, 200.0, account.PaidAmount)
}

func TestComputeLedgerOverpaymentClampsDueToZero(t *testing.T) {
	schedule := models.FeeSchedule{SessionFee: 500}
	account := ComputeLedger([]*models.PaymentTransaction{
		tx(models.SessionFee, models.PaymentCompleted, 700, 0),
	}, models.Regular, schedule)
	assert.Equal(t, 0.0, account.DueAmount)
	assert.Equal(t, models.FeePaid, account.Status)
}

func TestApplyPaymentRejectsZeroAmount(t *testing.T) {
	account := models.FeeAccount{DueAmount: 500}
	_, err := ApplyPayment(account, 0, 0, models.Regular)
	assert.ErrorIs(t, err, ErrNoAmount)
}

func TestApplyPaymentRejectsAlreadyPaidAdmission(t *testing.T) {
	account := models.FeeAccount{
		Category:   models.AdmissionFee,
		PaidAmount: 1000,
		DueAmount:  0,
		Status:     models.FeePaid,
	}

	got, err := ApplyPayment(account, 100, 0, models.NewAdmission)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Equal(t, account, got, "rejection must not change state")
}

func TestApplyPaymentRejectsOverCollection(t *testing.T) {
	account := models.FeeAccount{DueAmount: 500, Status: models.FeeDue}

	_, err := ApplyPayment(account, 600, 0, models.NewAdmission)
	assert.ErrorIs(t, err, ErrExceedsDue)

	// discount widens the collectable amount
	got, err := ApplyPayment(account, 450, 50, models.NewAdmission)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.DueAmount)
	assert.Equal(t, models.FeePaid, got.Status)
}

func TestApplyPaymentRegularStudentsCanOverpay(t *testing.T) {
	// the over-collection guard only applies to new admissions
	account := models.FeeAccount{DueAmount: 500, Status: models.FeeDue}
	got, err := ApplyPayment(account, 600, 0, models.Regular)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.DueAmount)
	assert.Equal(t, 600.0, got.PaidAmount)
}

func TestApplyPaymentPartial(t *testing.T) {
	account := models.FeeAccount{DueAmount: 500, Status: models.FeeDue}
	got, err := ApplyPayment(account, 200, 50, models.NewAdmission)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.PaidAmount)
	assert.Equal(t, 50.0, got.TotalDiscount)
	assert.Equal(t, 250.0, got.DueAmount)
	assert.Equal(t, models.FeePartial, got.Status)
}
