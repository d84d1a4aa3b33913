package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clinica/internal/domain"
)

type ConsultationRepo struct {
	db DB
}

func NewConsultationRepository(db DB) ConsultationRepository {
	return &ConsultationRepo{db: db}
}

// lockRoomQuery сериализует конкурирующие записи по ключу (дата, кабинет):
// без блокировки два параллельных запроса могли бы оба пройти проверку
// пересечений до того, как один из них закоммитится.
const lockRoomQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

// checkConflict выполняет проверку пересечения интервалов внутри транзакции.
// Кабинет сопоставляется по структурной ссылке ИЛИ по устаревшему строковому
// имени: исторические записи могут не иметь consultorio_id. Тест пересечения
// полуоткрытый, встык идущие консультации конфликтом не считаются.
func (r *ConsultationRepo) checkConflict(ctx context.Context, tx pgx.Tx, date time.Time, timeStr string, duration int, consultorioID *int64, consultorioName string, excludeID int64) error {
	if consultorioID == nil && consultorioName == "" {
		return nil
	}

	// Проверка пересечений сопоставляет кабинеты по id ИЛИ по имени,
	// поэтому блокируются оба ключа: писатель только с устаревшим именем
	// и писатель со структурной ссылкой должны сериализоваться между собой.
	// Порядок ключей фиксированный (id, затем имя), чтобы исключить взаимную
	// блокировку.
	var lockKeys []string
	if consultorioID != nil {
		lockKeys = append(lockKeys, fmt.Sprintf("%s|%d", date.Format("2006-01-02"), *consultorioID))
	}
	if consultorioName != "" {
		lockKeys = append(lockKeys, date.Format("2006-01-02")+"|"+consultorioName)
	}

	for _, lockKey := range lockKeys {
		if _, err := tx.Exec(ctx, lockRoomQuery, lockKey); err != nil {
			return fmt.Errorf("ошибка блокировки по кабинету: %w", err)
		}
	}

	query := `
		SELECT COUNT(*)
		FROM consultations
		WHERE date = $1
		AND status != 'cancelled'
		AND id != $2
		AND (
			(consultorio_id IS NOT NULL AND consultorio_id = $3)
			OR (consultorio_name <> '' AND consultorio_name = $4)
		)
		AND time < ($5::time + make_interval(mins => $6))
		AND (time + make_interval(mins => duration)) > $5::time
	`

	var count int
	err := tx.QueryRow(ctx, query, date, excludeID, consultorioID, consultorioName, timeStr, duration).Scan(&count)
	if err != nil {
		return fmt.Errorf("ошибка проверки занятости кабинета: %w", err)
	}

	if count > 0 {
		return domain.ErrConsultorioOcupado
	}

	return nil
}

func (r *ConsultationRepo) Create(ctx context.Context, consultation domain.Consultation) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	err = r.checkConflict(
		ctx, tx,
		consultation.Date,
		consultation.Time,
		consultation.Duration,
		consultation.ConsultorioID,
		consultation.ConsultorioName,
		0,
	)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO consultations (patient_id, professional_id, consultorio_id, consultorio_name, date, time, duration, charge, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRow(ctx, query,
		consultation.PatientID,
		consultation.ProfessionalID,
		consultation.ConsultorioID,
		consultation.ConsultorioName,
		consultation.Date,
		consultation.Time,
		consultation.Duration,
		consultation.Charge,
		consultation.Notes,
		domain.ConsultationStatusPending,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания консультации: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return id, nil
}

func (r *ConsultationRepo) GetByID(ctx context.Context, id int64) (*domain.Consultation, error) {
	query := `
		SELECT c.id, c.patient_id, c.professional_id, c.consultorio_id, c.consultorio_name,
		       c.date, to_char(c.time, 'HH24:MI'), c.duration, c.charge, c.notes, c.status,
		       c.created_at, c.updated_at,
		       p.first_name || ' ' || p.last_name,
		       pr.first_name || ' ' || pr.last_name
		FROM consultations c
		JOIN patients p ON c.patient_id = p.id
		JOIN professionals pr ON c.professional_id = pr.id
		WHERE c.id = $1
	`

	var consultation domain.Consultation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&consultation.ID,
		&consultation.PatientID,
		&consultation.ProfessionalID,
		&consultation.ConsultorioID,
		&consultation.ConsultorioName,
		&consultation.Date,
		&consultation.Time,
		&consultation.Duration,
		&consultation.Charge,
		&consultation.Notes,
		&consultation.Status,
		&consultation.CreatedAt,
		&consultation.UpdatedAt,
		&consultation.PatientName,
		&consultation.ProfessionalName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения консультации: %w", err)
	}

	return &consultation, nil
}

func (r *ConsultationRepo) UpdateTime(ctx context.Context, id int64, date time.Time, timeStr string, duration int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var consultorioID *int64
	var consultorioName string

	rowQuery := `
		SELECT consultorio_id, consultorio_name
		FROM consultations
		WHERE id = $1
		FOR UPDATE
	`

	err = tx.QueryRow(ctx, rowQuery, id).Scan(&consultorioID, &consultorioName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("консультация не найдена: %w", err)
		}
		return fmt.Errorf("ошибка получения консультации: %w", err)
	}

	err = r.checkConflict(ctx, tx, date, timeStr, duration, consultorioID, consultorioName, id)
	if err != nil {
		return err
	}

	updateQuery := `
		UPDATE consultations
		SET date = $1, time = $2, duration = $3, status = $4, updated_at = $5
		WHERE id = $6
	`

	_, err = tx.Exec(ctx, updateQuery, date, timeStr, duration, domain.ConsultationStatusPending, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления времени консультации: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return nil
}

func (r *ConsultationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ConsultationStatus) error {
	query := `UPDATE consultations SET status = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса консультации: %w", err)
	}

	return nil
}

func (r *ConsultationRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM consultations WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления консультации: %w", err)
	}

	return nil
}

func (r *ConsultationRepo) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	countQuery := `SELECT COUNT(*) FROM consultations c WHERE 1=1`
	selectQuery := `
		SELECT c.id, c.patient_id, c.professional_id, c.consultorio_id, c.consultorio_name,
		       c.date, to_char(c.time, 'HH24:MI'), c.duration, c.charge, c.notes, c.status,
		       c.created_at, c.updated_at,
		       p.first_name || ' ' || p.last_name,
		       pr.first_name || ' ' || pr.last_name
		FROM consultations c
		JOIN patients p ON c.patient_id = p.id
		JOIN professionals pr ON c.professional_id = pr.id
		WHERE 1=1
	`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.PatientID != nil {
		conditions += fmt.Sprintf(" AND c.patient_id = $%d", argPos)
		args = append(args, *filter.PatientID)
		argPos++
	}

	if filter.ProfessionalID != nil {
		conditions += fmt.Sprintf(" AND c.professional_id = $%d", argPos)
		args = append(args, *filter.ProfessionalID)
		argPos++
	}

	if filter.ConsultorioID != nil {
		conditions += fmt.Sprintf(" AND c.consultorio_id = $%d", argPos)
		args = append(args, *filter.ConsultorioID)
		argPos++
	}

	if filter.Status != nil {
		conditions += fmt.Sprintf(" AND c.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.StartDate != nil {
		conditions += fmt.Sprintf(" AND c.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions += fmt.Sprintf(" AND c.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	selectQuery += fmt.Sprintf(" ORDER BY c.date, c.time LIMIT $%d OFFSET $%d", argPos, argPos+1)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества консультаций: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка консультаций: %w", err)
	}
	defer rows.Close()

	var consultations []domain.Consultation
	for rows.Next() {
		var consultation domain.Consultation
		err := rows.Scan(
			&consultation.ID,
			&consultation.PatientID,
			&consultation.ProfessionalID,
			&consultation.ConsultorioID,
			&consultation.ConsultorioName,
			&consultation.Date,
			&consultation.Time,
			&consultation.Duration,
			&consultation.Charge,
			&consultation.Notes,
			&consultation.Status,
			&consultation.CreatedAt,
			&consultation.UpdatedAt,
			&consultation.PatientName,
			&consultation.ProfessionalName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки консультации: %w", err)
		}
		consultations = append(consultations, consultation)
	}

	return consultations, total, rows.Err()
}

func (r *ConsultationRepo) ListForDay(ctx context.Context, professionalID int64, date time.Time) ([]domain.Consultation, error) {
	query := `
		SELECT id, patient_id, professional_id, consultorio_id, consultorio_name,
		       date, to_char(time, 'HH24:MI'), duration, charge, notes, status, created_at, updated_at
		FROM consultations
		WHERE professional_id = $1 AND date = $2 AND status != 'cancelled'
		ORDER BY time
	`

	rows, err := r.db.Query(ctx, query, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения консультаций за день: %w", err)
	}
	defer rows.Close()

	var consultations []domain.Consultation
	for rows.Next() {
		var consultation domain.Consultation
		err := rows.Scan(
			&consultation.ID,
			&consultation.PatientID,
			&consultation.ProfessionalID,
			&consultation.ConsultorioID,
			&consultation.ConsultorioName,
			&consultation.Date,
			&consultation.Time,
			&consultation.Duration,
			&consultation.Charge,
			&consultation.Notes,
			&consultation.Status,
			&consultation.CreatedAt,
			&consultation.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки консультации: %w", err)
		}
		consultations = append(consultations, consultation)
	}

	return consultations, rows.Err()
}

// MarkNoShows переводит в no_show все pending-консультации, чьё время
// окончания уже прошло. Вызывается фоновой задачей, а не из путей чтения.
func (r *ConsultationRepo) MarkNoShows(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE consultations
		SET status = $1, updated_at = $2
		WHERE status = $3
		AND (date + time + make_interval(mins => duration)) <= $2
	`

	tag, err := r.db.Exec(ctx, query, domain.ConsultationStatusNoShow, now, domain.ConsultationStatusPending)
	if err != nil {
		return 0, fmt.Errorf("ошибка отметки неявок: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ConsultationRepo) AddAttachment(ctx context.Context, attachment domain.ConsultationAttachment) (int64, error) {
	query := `
		INSERT INTO consultation_attachments (consultation_id, file_name, object_key, content_type, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		attachment.ConsultationID,
		attachment.FileName,
		attachment.ObjectKey,
		attachment.ContentType,
		attachment.Size,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка сохранения вложения: %w", err)
	}

	return id, nil
}

func (r *ConsultationRepo) GetAttachment(ctx context.Context, id int64) (*domain.ConsultationAttachment, error) {
	query := `
		SELECT id, consultation_id, file_name, object_key, content_type, size, created_at
		FROM consultation_attachments
		WHERE id = $1
	`

	var attachment domain.ConsultationAttachment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&attachment.ID,
		&attachment.ConsultationID,
		&attachment.FileName,
		&attachment.ObjectKey,
		&attachment.ContentType,
		&attachment.Size,
		&attachment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения вложения: %w", err)
	}

	return &attachment, nil
}

func (r *ConsultationRepo) ListAttachments(ctx context.Context, consultationID int64) ([]domain.ConsultationAttachment, error) {
	query := `
		SELECT id, consultation_id, file_name, object_key, content_type, size, created_at
		FROM consultation_attachments
		WHERE consultation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, consultationID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка вложений: %w", err)
	}
	defer rows.Close()

	var attachments []domain.ConsultationAttachment
	for rows.Next() {
		var attachment domain.ConsultationAttachment
		err := rows.Scan(
			&attachment.ID,
			&attachment.ConsultationID,
			&attachment.FileName,
			&attachment.ObjectKey,
			&attachment.ContentType,
			&attachment.Size,
			&attachment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки вложения: %w", err)
		}
		attachments = append(attachments, attachment)
	}

	return attachments, rows.Err()
}

func (r *ConsultationRepo) DeleteAttachment(ctx context.Context, id int64) error {
	query := `DELETE FROM consultation_attachments WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления вложения: %w", err)
	}

	return nil
}
