package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clinica/internal/domain"
)

type ProfessionalRepo struct {
	db DB
}

func NewProfessionalRepository(db DB) ProfessionalRepository {
	return &ProfessionalRepo{db: db}
}

func (r *ProfessionalRepo) Create(ctx context.Context, dto domain.CreateProfessionalDTO) (int64, error) {
	query := `
		INSERT INTO professionals (user_id, first_name, last_name, role, email, phone, specialty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.UserID,
		dto.FirstName,
		dto.LastName,
		dto.Role,
		dto.Email,
		dto.Phone,
		dto.Specialty,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания профессионала: %w", err)
	}

	return id, nil
}

func (r *ProfessionalRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	query := `
		SELECT id, user_id, first_name, last_name, role, email, phone, specialty, created_at, updated_at
		FROM professionals
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *ProfessionalRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	query := `
		SELECT id, user_id, first_name, last_name, role, email, phone, specialty, created_at, updated_at
		FROM professionals
		WHERE user_id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *ProfessionalRepo) scanOne(row pgx.Row) (*domain.Professional, error) {
	var professional domain.Professional
	err := row.Scan(
		&professional.ID,
		&professional.UserID,
		&professional.FirstName,
		&professional.LastName,
		&professional.Role,
		&professional.Email,
		&professional.Phone,
		&professional.Specialty,
		&professional.CreatedAt,
		&professional.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения профессионала: %w", err)
	}

	return &professional, nil
}

func (r *ProfessionalRepo) Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error {
	query := `
		UPDATE professionals
		SET first_name = COALESCE($1, first_name),
		    last_name = COALESCE($2, last_name),
		    role = COALESCE($3, role),
		    email = COALESCE($4, email),
		    phone = COALESCE($5, phone),
		    specialty = COALESCE($6, specialty),
		    updated_at = $7
		WHERE id = $8
	`

	_, err := r.db.Exec(ctx, query,
		dto.FirstName,
		dto.LastName,
		dto.Role,
		dto.Email,
		dto.Phone,
		dto.Specialty,
		time.Now(),
		id,
	)

	if err != nil {
		return fmt.Errorf("ошибка обновления профессионала: %w", err)
	}

	return nil
}

func (r *ProfessionalRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM professionals WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления профессионала: %w", err)
	}

	return nil
}

func (r *ProfessionalRepo) List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, int, error) {
	countQuery := `SELECT COUNT(*) FROM professionals WHERE 1=1`
	selectQuery := `
		SELECT id, user_id, first_name, last_name, role, email, phone, specialty, created_at, updated_at
		FROM professionals
		WHERE 1=1
	`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.Role != nil {
		conditions += fmt.Sprintf(" AND role = $%d", argPos)
		args = append(args, *filter.Role)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions
	selectQuery += fmt.Sprintf(" ORDER BY last_name, first_name LIMIT $%d OFFSET $%d", argPos, argPos+1)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества профессионалов: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка профессионалов: %w", err)
	}
	defer rows.Close()

	var professionals []domain.Professional
	for rows.Next() {
		var professional domain.Professional
		err := rows.Scan(
			&professional.ID,
			&professional.UserID,
			&professional.FirstName,
			&professional.LastName,
			&professional.Role,
			&professional.Email,
			&professional.Phone,
			&professional.Specialty,
			&professional.CreatedAt,
			&professional.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки профессионала: %w", err)
		}
		professionals = append(professionals, professional)
	}

	return professionals, total, rows.Err()
}
