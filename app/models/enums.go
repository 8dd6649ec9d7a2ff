package models

// StudentType distinguishes newly admitted students from continuing ones.
// It selects which fee category a student is billed under.
type StudentType string

const (
	NewAdmission StudentType = "new_admission"
	Regular      StudentType = "regular"
)

// FeeCategory identifies the fee a payment transaction settles.
type FeeCategory string

const (
	AdmissionFee FeeCategory = "admission"
	SessionFee   FeeCategory = "session"
)

// VoucherPrefix returns the receipt prefix for the category.
func (c FeeCategory) VoucherPrefix() string {
	if c == AdmissionFee {
		return "ADM"
	}
	return "SES"
}

// CategoryForStudentType maps a student type to the fee category it is
// expected to pay.
func CategoryForStudentType(t StudentType) FeeCategory {
	if t == NewAdmission {
		return AdmissionFee
	}
	return SessionFee
}

// PaymentStatus defines the status of a payment transaction.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// FeeStatus is the derived state of a student's fee account.
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePartial FeeStatus = "partial"
	FeeDue     FeeStatus = "due"
)

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
