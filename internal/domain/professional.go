package domain

import (
	"time"
)

type ProfessionalRole string

const (
	ProfessionalRolePsychologist ProfessionalRole = "psychologist"
	ProfessionalRolePsychiatrist ProfessionalRole = "psychiatrist"
)

type Professional struct {
	ID        int64            `json:"id"`
	UserID    *int64           `json:"user_id,omitempty"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Role      ProfessionalRole `json:"role"`
	Email     string           `json:"email,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	Specialty string           `json:"specialty,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CreateProfessionalDTO struct {
	UserID    *int64           `json:"user_id"`
	FirstName string           `json:"first_name" binding:"required"`
	LastName  string           `json:"last_name" binding:"required"`
	Role      ProfessionalRole `json:"role" binding:"required,oneof=psychologist psychiatrist"`
	Email     string           `json:"email" binding:"omitempty,email"`
	Phone     string           `json:"phone"`
	Specialty string           `json:"specialty"`
}

type UpdateProfessionalDTO struct {
	FirstName *string           `json:"first_name"`
	LastName  *string           `json:"last_name"`
	Role      *ProfessionalRole `json:"role" binding:"omitempty,oneof=psychologist psychiatrist"`
	Email     *string           `json:"email" binding:"omitempty,email"`
	Phone     *string           `json:"phone"`
	Specialty *string           `json:"specialty"`
}

type ProfessionalFilter struct {
	Role   *ProfessionalRole `json:"role"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
