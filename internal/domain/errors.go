package domain

import (
	"errors"
)

var (
	// ErrConsultorioOcupado возвращается проверкой конфликтов, когда
	// предлагаемый интервал пересекается с другой консультацией в том же
	// консультории на ту же дату.
	ErrConsultorioOcupado = errors.New("консультория занята на выбранное время")

	// ErrFechaPasada возвращается при попытке создать или перенести
	// консультацию на дату раньше сегодняшней.
	ErrFechaPasada = errors.New("дата консультации не может быть в прошлом")

	ErrDatosInvalidos = errors.New("неверные входные данные")
)
