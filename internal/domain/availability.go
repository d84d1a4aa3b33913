package domain

import (
	"time"
)

// Дни недели хранятся в нумерации 0=понедельник .. 6=воскресенье.

type WeeklyAvailability struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professional_id"`
	Weekday        int       `json:"weekday"`
	StartTime      *string   `json:"start_time,omitempty"`
	EndTime        *string   `json:"end_time,omitempty"`
	IsClosed       bool      `json:"is_closed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AvailabilityException переопределяет недельный шаблон на конкретную дату.
// Если is_closed - весь день недоступен. Если заданы оба времени и
// start < end - интервал считается заблокированным участком внутри рабочего
// окна дня, а не заменой окна.
type AvailabilityException struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professional_id"`
	Date           time.Time `json:"date"`
	StartTime      *string   `json:"start_time,omitempty"`
	EndTime        *string   `json:"end_time,omitempty"`
	IsClosed       bool      `json:"is_closed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SetWeeklyAvailabilityDTO struct {
	Weekday   int     `json:"weekday" binding:"min=0,max=6"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsClosed  bool    `json:"is_closed"`
}

type SetExceptionDTO struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsClosed  bool    `json:"is_closed"`
}

type ExceptionFilter struct {
	ProfessionalID int64      `json:"professional_id"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}
