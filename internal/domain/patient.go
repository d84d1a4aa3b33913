package domain

import (
	"time"
)

type Patient struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Address        string     `json:"address,omitempty"`
	ProfessionalID *int64     `json:"professional_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreatePatientDTO struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	ProfessionalID *int64 `json:"professional_id"`
}

type UpdatePatientDTO struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	DateOfBirth    *string `json:"date_of_birth"`
	Address        *string `json:"address"`
	ProfessionalID *int64  `json:"professional_id"`
}

type PatientFilter struct {
	ProfessionalID *int64 `json:"professional_id"`
	Limit          int    `json:"limit"`
	Offset         int    `json:"offset"`
}
