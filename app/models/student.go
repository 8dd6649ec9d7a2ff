package models

import "time"

// Student is a roster entry. Fee amounts are the schedule agreed at
// admission; paid/due figures are derived from the transaction log and
// never edited directly.
type Student struct {
	ID              string      `json:"id" validate:"omitempty,uuid"`
	StudentCode     string      `json:"student_code" validate:"required"`
	FirstName       string      `json:"first_name" validate:"required"`
	LastName        string      `json:"last_name" validate:"required"`
	ClassName       string      `json:"class_name" validate:"required"`
	Gender          Gender      `json:"gender" validate:"omitempty,oneof=male female other"`
	StudentType     StudentType `json:"student_type" validate:"required,oneof=new_admission regular"`
	GuardianName    string      `json:"guardian_name,omitempty"`
	GuardianPhone   string      `json:"guardian_phone,omitempty"`
	AdmissionFee    float64     `json:"admission_fee" validate:"gte=0"`
	SessionFee      float64     `json:"session_fee" validate:"gte=0"`
	RegistrationFee float64     `json:"registration_fee" validate:"gte=0"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	DeletedAt       *time.Time  `json:"deleted_at,omitempty"`
}

// FullName joins first and last name for display and receipts.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// FeeSchedule returns the fee amounts agreed for this student.
func (s *Student) FeeSchedule() FeeSchedule {
	return FeeSchedule{
		AdmissionFee:    s.AdmissionFee,
		SessionFee:      s.SessionFee,
		RegistrationFee: s.RegistrationFee,
	}
}
