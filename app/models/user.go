package models

import "time"

// User is a staff account that can log in and collect fees or enter marks.
type User struct {
	ID        string     `json:"id" validate:"omitempty,uuid"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"-"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Roles     []*Role    `json:"roles,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Role is a named permission group (admin, accountant, teacher).
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
