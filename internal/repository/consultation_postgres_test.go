package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinica/internal/domain"
)

func newConsultationRepoMock(t *testing.T) (pgxmock.PgxPoolIface, ConsultationRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewConsultationRepository(mock)
}

func testConsultation(consultorioID int64) domain.Consultation {
	return domain.Consultation{
		PatientID:      1,
		ProfessionalID: 2,
		ConsultorioID:  &consultorioID,
		Date:           time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		Time:           "10:00",
		Duration:       60,
		Charge:         1500,
	}
}

func TestConsultationCreate_LocksRoomBeforeConflictCheck(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)
	consultation := testConsultation(5)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("2026-09-07|5").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(consultation.Date, int64(0), consultation.ConsultorioID, "", "10:00", 60).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO consultations").
		WithArgs(int64(1), int64(2), consultation.ConsultorioID, "",
			consultation.Date, "10:00", 60, 1500.0, "",
			domain.ConsultationStatusPending, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), consultation)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationCreate_OverlapReturnsOccupied(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)
	consultation := testConsultation(5)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("2026-09-07|5").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(consultation.Date, int64(0), consultation.ConsultorioID, "", "10:00", 60).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), consultation)
	require.ErrorIs(t, err, domain.ErrConsultorioOcupado)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationCreate_LegacyNameLockKey(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)

	consultation := testConsultation(0)
	consultation.ConsultorioID = nil
	consultation.ConsultorioName = "Кабинет 1"

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("2026-09-07|Кабинет 1").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(consultation.Date, int64(0), (*int64)(nil), "Кабинет 1", "10:00", 60).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO consultations").
		WithArgs(int64(1), int64(2), (*int64)(nil), "Кабинет 1",
			consultation.Date, "10:00", 60, 1500.0, "",
			domain.ConsultationStatusPending, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), consultation)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Проверка пересечений сопоставляет кабинеты по id ИЛИ по имени, поэтому
// запись с обоими полями держит обе блокировки: иначе писатель только с
// устаревшим именем сериализовался бы по другому ключу.
func TestConsultationCreate_BothRoomKeysLocked(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)

	consultation := testConsultation(5)
	consultation.ConsultorioName = "Кабинет 1"

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("2026-09-07|5").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("2026-09-07|Кабинет 1").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(consultation.Date, int64(0), consultation.ConsultorioID, "Кабинет 1", "10:00", 60).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO consultations").
		WithArgs(int64(1), int64(2), consultation.ConsultorioID, "Кабинет 1",
			consultation.Date, "10:00", 60, 1500.0, "",
			domain.ConsultationStatusPending, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), consultation)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Консультация без кабинета не сериализуется и не проверяется на пересечения.
func TestConsultationCreate_NoRoomSkipsConflictCheck(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)

	consultation := testConsultation(0)
	consultation.ConsultorioID = nil
	consultation.ConsultorioName = ""

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO consultations").
		WithArgs(int64(1), int64(2), (*int64)(nil), "",
			consultation.Date, "10:00", 60, 1500.0, "",
			domain.ConsultationStatusPending, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), consultation)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationUpdateTime_ResetsStatusToPending(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)

	consultorioID := int64(5)
	date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT consultorio_id, consultorio_name").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"consultorio_id", "consultorio_name"}).
			AddRow(&consultorioID, ""))
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("2026-09-08|5").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(date, int64(42), &consultorioID, "", "14:30", 45).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("UPDATE consultations").
		WithArgs(date, "14:30", 45, domain.ConsultationStatusPending, pgxmock.AnyArg(), int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.UpdateTime(context.Background(), 42, date, "14:30", 45)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationUpdateTime_OverlapExcludesSelf(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)

	consultorioID := int64(5)
	date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT consultorio_id, consultorio_name").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"consultorio_id", "consultorio_name"}).
			AddRow(&consultorioID, ""))
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("2026-09-08|5").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(date, int64(42), &consultorioID, "", "14:30", 45).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.UpdateTime(context.Background(), 42, date, "14:30", 45)
	require.ErrorIs(t, err, domain.ErrConsultorioOcupado)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationGetByID_NotFoundReturnsNil(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)

	mock.ExpectQuery("FROM consultations c").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	consultation, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, consultation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationMarkNoShows_ReturnsAffectedCount(t *testing.T) {
	mock, repo := newConsultationRepoMock(t)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE consultations").
		WithArgs(domain.ConsultationStatusNoShow, now, domain.ConsultationStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	marked, err := repo.MarkNoShows(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
