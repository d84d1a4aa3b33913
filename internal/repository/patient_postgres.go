package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clinica/internal/domain"
)

type PatientRepo struct {
	db DB
}

func NewPatientRepository(db DB) PatientRepository {
	return &PatientRepo{db: db}
}

func (r *PatientRepo) Create(ctx context.Context, patient domain.Patient) (int64, error) {
	query := `
		INSERT INTO patients (first_name, last_name, email, phone, date_of_birth, address, professional_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.Email,
		patient.Phone,
		patient.DateOfBirth,
		patient.Address,
		patient.ProfessionalID,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания пациента: %w", err)
	}

	return id, nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, date_of_birth, address, professional_id, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	var patient domain.Patient
	err := r.db.QueryRow(ctx, query, id).Scan(
		&patient.ID,
		&patient.FirstName,
		&patient.LastName,
		&patient.Email,
		&patient.Phone,
		&patient.DateOfBirth,
		&patient.Address,
		&patient.ProfessionalID,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения пациента: %w", err)
	}

	return &patient, nil
}

func (r *PatientRepo) Update(ctx context.Context, patient domain.Patient) error {
	query := `
		UPDATE patients
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    date_of_birth = $5, address = $6, professional_id = $7, updated_at = $8
		WHERE id = $9
	`

	_, err := r.db.Exec(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.Email,
		patient.Phone,
		patient.DateOfBirth,
		patient.Address,
		patient.ProfessionalID,
		time.Now(),
		patient.ID,
	)

	if err != nil {
		return fmt.Errorf("ошибка обновления пациента: %w", err)
	}

	return nil
}

func (r *PatientRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM patients WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пациента: %w", err)
	}

	return nil
}

func (r *PatientRepo) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error) {
	countQuery := `SELECT COUNT(*) FROM patients WHERE 1=1`
	selectQuery := `
		SELECT id, first_name, last_name, email, phone, date_of_birth, address, professional_id, created_at, updated_at
		FROM patients
		WHERE 1=1
	`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.ProfessionalID != nil {
		conditions += fmt.Sprintf(" AND professional_id = $%d", argPos)
		args = append(args, *filter.ProfessionalID)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions
	selectQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества пациентов: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка пациентов: %w", err)
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var patient domain.Patient
		err := rows.Scan(
			&patient.ID,
			&patient.FirstName,
			&patient.LastName,
			&patient.Email,
			&patient.Phone,
			&patient.DateOfBirth,
			&patient.Address,
			&patient.ProfessionalID,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки пациента: %w", err)
		}
		patients = append(patients, patient)
	}

	return patients, total, rows.Err()
}
