package domain

import (
	"time"
)

// Consultorio - кабинет клиники. Участвует в планировании только как
// независимое измерение проверки конфликтов: две консультации в одном
// кабинете не могут пересекаться по времени.
type Consultorio struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateConsultorioDTO struct {
	Name string `json:"name" binding:"required"`
}

type UpdateConsultorioDTO struct {
	Name string `json:"name" binding:"required"`
}
