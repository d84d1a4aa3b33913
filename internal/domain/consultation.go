package domain

import (
	"time"
)

type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusAttended  ConsultationStatus = "attended"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusNoShow    ConsultationStatus = "no_show"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

const DefaultConsultationDuration = 60

type Consultation struct {
	ID             int64              `json:"id"`
	PatientID      int64              `json:"patient_id"`
	ProfessionalID int64              `json:"professional_id"`
	ConsultorioID  *int64             `json:"consultorio_id,omitempty"`
	// ConsultorioName - устаревшее строковое поле кабинета. Исторические
	// записи могут не иметь структурной ссылки, поэтому проверка конфликтов
	// сопоставляет кабинеты по id ИЛИ по имени.
	ConsultorioName string             `json:"consultorio_name,omitempty"`
	Date            time.Time          `json:"date"`
	Time            string             `json:"time"`
	Duration        int                `json:"duration"`
	Charge          float64            `json:"charge"`
	Notes           string             `json:"notes,omitempty"`
	Status          ConsultationStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	PatientName     string             `json:"patient_name,omitempty"`
	ProfessionalName string            `json:"professional_name,omitempty"`
}

type CreateConsultationDTO struct {
	PatientID       int64   `json:"patient_id" binding:"required"`
	ProfessionalID  int64   `json:"professional_id" binding:"required"`
	ConsultorioID   *int64  `json:"consultorio_id"`
	ConsultorioName string  `json:"consultorio_name"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	Duration        int     `json:"duration"`
	Charge          float64 `json:"charge"`
	Notes           string  `json:"notes"`
}

// UpdateConsultationTimeDTO - перетаскивание или изменение длительности
// консультации в календаре.
type UpdateConsultationTimeDTO struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration"`
}

type RescheduleMode string

const (
	RescheduleModeCancel     RescheduleMode = "cancel"
	RescheduleModeReschedule RescheduleMode = "reschedule"
)

type RescheduleConsultationDTO struct {
	Mode RescheduleMode `json:"mode" binding:"required,oneof=cancel reschedule"`
	Date string         `json:"date"`
	Time string         `json:"time"`
}

type ConsultationFilter struct {
	PatientID      *int64              `json:"patient_id"`
	ProfessionalID *int64              `json:"professional_id"`
	ConsultorioID  *int64              `json:"consultorio_id"`
	Status         *ConsultationStatus `json:"status"`
	StartDate      *time.Time          `json:"start_date"`
	EndDate        *time.Time          `json:"end_date"`
	Limit          int                 `json:"limit"`
	Offset         int                 `json:"offset"`
}

type ConsultationAttachment struct {
	ID             int64     `json:"id"`
	ConsultationID int64     `json:"consultation_id"`
	FileName       string    `json:"file_name"`
	ObjectKey      string    `json:"-"`
	ContentType    string    `json:"content_type"`
	Size           int64     `json:"size"`
	CreatedAt      time.Time `json:"created_at"`
}
