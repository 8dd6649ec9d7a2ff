package models

import "time"

// PaymentTransaction is an append-only fee collection record. The
// transaction log is the source of truth the fee account is derived
// from; records are never mutated or deleted in the normal flow.
type PaymentTransaction struct {
	ID            string        `json:"id" validate:"omitempty,uuid"`
	StudentID     string        `json:"student_id" validate:"required,uuid"`
	Category      FeeCategory   `json:"category" validate:"required,oneof=admission session"`
	Amount        float64       `json:"amount" validate:"gte=0"`
	PaidAmount    float64       `json:"paid_amount" validate:"gte=0"`
	Discount      float64       `json:"discount" validate:"gte=0"`
	Status        PaymentStatus `json:"status"`
	VoucherNumber string        `json:"voucher_number"`
	CollectedBy   string        `json:"collected_by,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Date          time.Time     `json:"date"`
	CreatedAt     time.Time     `json:"created_at"`
}
