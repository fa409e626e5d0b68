package models

import "time"

type Patient struct {
	ID          string     `json:"id"`
	ClinicID    string     `json:"clinic_id"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	IsActive    bool       `json:"is_active"`
}
