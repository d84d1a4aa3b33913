package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clinica/internal/domain"
)

type AvailabilityRepo struct {
	db DB
}

func NewAvailabilityRepository(db DB) AvailabilityRepository {
	return &AvailabilityRepo{db: db}
}

func (r *AvailabilityRepo) UpsertWeekly(ctx context.Context, professionalID int64, dto domain.SetWeeklyAvailabilityDTO) (int64, error) {
	query := `
		INSERT INTO weekly_availability (professional_id, weekday, start_time, end_time, is_closed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (professional_id, weekday)
		DO UPDATE SET start_time = $3, end_time = $4, is_closed = $5, updated_at = $6
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		professionalID,
		dto.Weekday,
		dto.StartTime,
		dto.EndTime,
		dto.IsClosed,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка сохранения недельного шаблона: %w", err)
	}

	return id, nil
}

func (r *AvailabilityRepo) GetWeekly(ctx context.Context, professionalID int64, weekday int) (*domain.WeeklyAvailability, error) {
	query := `
		SELECT id, professional_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), is_closed, created_at, updated_at
		FROM weekly_availability
		WHERE professional_id = $1 AND weekday = $2
	`

	var weekly domain.WeeklyAvailability
	err := r.db.QueryRow(ctx, query, professionalID, weekday).Scan(
		&weekly.ID,
		&weekly.ProfessionalID,
		&weekly.Weekday,
		&weekly.StartTime,
		&weekly.EndTime,
		&weekly.IsClosed,
		&weekly.CreatedAt,
		&weekly.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения недельного шаблона: %w", err)
	}

	return &weekly, nil
}

func (r *AvailabilityRepo) ListWeekly(ctx context.Context, professionalID int64) ([]domain.WeeklyAvailability, error) {
	query := `
		SELECT id, professional_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), is_closed, created_at, updated_at
		FROM weekly_availability
		WHERE professional_id = $1
		ORDER BY weekday
	`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения недельного шаблона: %w", err)
	}
	defer rows.Close()

	var result []domain.WeeklyAvailability
	for rows.Next() {
		var weekly domain.WeeklyAvailability
		err := rows.Scan(
			&weekly.ID,
			&weekly.ProfessionalID,
			&weekly.Weekday,
			&weekly.StartTime,
			&weekly.EndTime,
			&weekly.IsClosed,
			&weekly.CreatedAt,
			&weekly.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки шаблона: %w", err)
		}
		result = append(result, weekly)
	}

	return result, rows.Err()
}

func (r *AvailabilityRepo) UpsertException(ctx context.Context, professionalID int64, date time.Time, dto domain.SetExceptionDTO) (int64, error) {
	query := `
		INSERT INTO availability_exceptions (professional_id, date, start_time, end_time, is_closed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (professional_id, date)
		DO UPDATE SET start_time = $3, end_time = $4, is_closed = $5, updated_at = $6
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		professionalID,
		date,
		dto.StartTime,
		dto.EndTime,
		dto.IsClosed,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка сохранения исключения доступности: %w", err)
	}

	return id, nil
}

func (r *AvailabilityRepo) GetException(ctx context.Context, professionalID int64, date time.Time) (*domain.AvailabilityException, error) {
	query := `
		SELECT id, professional_id, date, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), is_closed, created_at, updated_at
		FROM availability_exceptions
		WHERE professional_id = $1 AND date = $2
	`

	var exception domain.AvailabilityException
	err := r.db.QueryRow(ctx, query, professionalID, date).Scan(
		&exception.ID,
		&exception.ProfessionalID,
		&exception.Date,
		&exception.StartTime,
		&exception.EndTime,
		&exception.IsClosed,
		&exception.CreatedAt,
		&exception.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения исключения доступности: %w", err)
	}

	return &exception, nil
}

func (r *AvailabilityRepo) ListExceptions(ctx context.Context, filter domain.ExceptionFilter) ([]domain.AvailabilityException, error) {
	query := `
		SELECT id, professional_id, date, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), is_closed, created_at, updated_at
		FROM availability_exceptions
		WHERE professional_id = $1
	`

	args := []interface{}{filter.ProfessionalID}
	argPos := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += " ORDER BY date"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка исключений: %w", err)
	}
	defer rows.Close()

	var result []domain.AvailabilityException
	for rows.Next() {
		var exception domain.AvailabilityException
		err := rows.Scan(
			&exception.ID,
			&exception.ProfessionalID,
			&exception.Date,
			&exception.StartTime,
			&exception.EndTime,
			&exception.IsClosed,
			&exception.CreatedAt,
			&exception.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки исключения: %w", err)
		}
		result = append(result, exception)
	}

	return result, rows.Err()
}

func (r *AvailabilityRepo) DeleteException(ctx context.Context, id int64) error {
	query := `DELETE FROM availability_exceptions WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления исключения доступности: %w", err)
	}

	return nil
}
