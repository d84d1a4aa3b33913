package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clinica/internal/domain"
)

type ConsultorioRepo struct {
	db DB
}

func NewConsultorioRepository(db DB) ConsultorioRepository {
	return &ConsultorioRepo{db: db}
}

func (r *ConsultorioRepo) Create(ctx context.Context, dto domain.CreateConsultorioDTO) (int64, error) {
	query := `
		INSERT INTO consultorios (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, dto.Name, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания консультория: %w", err)
	}

	return id, nil
}

func (r *ConsultorioRepo) GetByID(ctx context.Context, id int64) (*domain.Consultorio, error) {
	query := `SELECT id, name, created_at FROM consultorios WHERE id = $1`

	var consultorio domain.Consultorio
	err := r.db.QueryRow(ctx, query, id).Scan(
		&consultorio.ID,
		&consultorio.Name,
		&consultorio.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения консультория: %w", err)
	}

	return &consultorio, nil
}

func (r *ConsultorioRepo) Update(ctx context.Context, id int64, dto domain.UpdateConsultorioDTO) error {
	query := `UPDATE consultorios SET name = $1 WHERE id = $2`

	_, err := r.db.Exec(ctx, query, dto.Name, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления консультория: %w", err)
	}

	return nil
}

func (r *ConsultorioRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM consultorios WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления консультория: %w", err)
	}

	return nil
}

func (r *ConsultorioRepo) List(ctx context.Context) ([]domain.Consultorio, error) {
	query := `SELECT id, name, created_at FROM consultorios ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка консульториев: %w", err)
	}
	defer rows.Close()

	var consultorios []domain.Consultorio
	for rows.Next() {
		var consultorio domain.Consultorio
		if err := rows.Scan(&consultorio.ID, &consultorio.Name, &consultorio.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки консультория: %w", err)
		}
		consultorios = append(consultorios, consultorio)
	}

	return consultorios, rows.Err()
}
