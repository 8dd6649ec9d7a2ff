package models

import "time"

// Attendance records one student's status for one day. Unique per
// (student, date); re-marking upserts.
type Attendance struct {
	ID        string           `json:"id" validate:"omitempty,uuid"`
	StudentID string           `json:"student_id" validate:"required,uuid"`
	ClassName string           `json:"class_name"`
	Date      time.Time        `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	MarkedBy  string           `json:"marked_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AttendanceReport is a per-student roll-up for a class over a period.
type AttendanceReport struct {
	StudentID      string  `json:"student_id"`
	StudentName    string  `json:"student_name"`
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	LateDays       int     `json:"late_days"`
	ExcusedDays    int     `json:"excused_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}
