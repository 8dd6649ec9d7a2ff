package models

import "time"

// Exam is a named assessment for one class. Its required subject list
// defines completeness for result aggregation: a student missing any
// of these subjects fails the exam outright.
type Exam struct {
	ID               string     `json:"id" validate:"omitempty,uuid"`
	Name             string     `json:"name" validate:"required"`
	ClassName        string     `json:"class_name" validate:"required"`
	RequiredSubjects []string   `json:"required_subjects"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}
