package models

// FeeSchedule holds the fee amounts agreed for a student at admission.
type FeeSchedule struct {
	AdmissionFee    float64 `json:"admission_fee"`
	SessionFee      float64 `json:"session_fee"`
	RegistrationFee float64 `json:"registration_fee"`
}

// ExpectedFee returns the amount the student type is billed for:
// the admission fee for new admissions, the session fee otherwise.
func (s FeeSchedule) ExpectedFee(t StudentType) float64 {
	if t == NewAdmission {
		return s.AdmissionFee
	}
	return s.SessionFee
}

// FeeAccount is the derived roll-up of a student's fee category:
// what was expected, what has been paid and discounted, and what
// remains due. Recomputed from the transaction log on demand.
type FeeAccount struct {
	StudentID     string      `json:"student_id"`
	Category      FeeCategory `json:"category"`
	ExpectedFee   float64     `json:"expected_fee"`
	PaidAmount    float64     `json:"paid_amount"`
	TotalDiscount float64     `json:"total_discount"`
	DueAmount     float64     `json:"due_amount"`
	Status        FeeStatus   `json:"status"`
}
