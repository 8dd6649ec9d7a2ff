package models

import "time"

// SubjectResult stores a student's marks for one subject in one exam.
// Unique per (student, exam, subject); re-entry upserts. Percentage,
// grade and GPA are computed from the marks when the record is written.
type SubjectResult struct {
	ID            string     `json:"id" validate:"omitempty,uuid"`
	StudentID     string     `json:"student_id" validate:"required,uuid"`
	StudentName   string     `json:"student_name,omitempty"`
	ClassName     string     `json:"class_name,omitempty"`
	ExamName      string     `json:"exam_name" validate:"required"`
	Subject       string     `json:"subject" validate:"required"`
	ObtainedMarks float64    `json:"obtained_marks" validate:"gte=0"`
	TotalMarks    float64    `json:"total_marks" validate:"gt=0"`
	Percentage    float64    `json:"percentage"`
	Grade         string     `json:"grade"`
	GPA           float64    `json:"gpa"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}
