package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityRepoMock(t *testing.T) (pgxmock.PgxPoolIface, AvailabilityRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewAvailabilityRepository(mock)
}

// Колонки TIME читаются через to_char: pgx отдаёт TIME в бинарном формате,
// который не сканируется в *string, поэтому запрос обязан возвращать текст.
func TestAvailabilityGetWeekly_ReadsTimesAsText(t *testing.T) {
	mock, repo := newAvailabilityRepoMock(t)

	start := "09:00"
	end := "17:00"
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)to_char\(start_time, 'HH24:MI'\), to_char\(end_time, 'HH24:MI'\).+FROM weekly_availability`).
		WithArgs(int64(1), 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "professional_id", "weekday", "start_time", "end_time", "is_closed", "created_at", "updated_at",
		}).AddRow(int64(10), int64(1), 0, &start, &end, false, now, now))

	weekly, err := repo.GetWeekly(context.Background(), 1, 0)
	require.NoError(t, err)
	require.NotNil(t, weekly)
	require.NotNil(t, weekly.StartTime)
	assert.Equal(t, "09:00", *weekly.StartTime)
	assert.Equal(t, "17:00", *weekly.EndTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityGetWeekly_NotFoundReturnsNil(t *testing.T) {
	mock, repo := newAvailabilityRepoMock(t)

	mock.ExpectQuery("FROM weekly_availability").
		WithArgs(int64(1), 6).
		WillReturnError(pgx.ErrNoRows)

	weekly, err := repo.GetWeekly(context.Background(), 1, 6)
	require.NoError(t, err)
	assert.Nil(t, weekly)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityGetException_ReadsTimesAsText(t *testing.T) {
	mock, repo := newAvailabilityRepoMock(t)

	start := "12:00"
	end := "13:00"
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)to_char\(start_time, 'HH24:MI'\), to_char\(end_time, 'HH24:MI'\).+FROM availability_exceptions`).
		WithArgs(int64(1), date).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "professional_id", "date", "start_time", "end_time", "is_closed", "created_at", "updated_at",
		}).AddRow(int64(3), int64(1), date, &start, &end, false, now, now))

	exception, err := repo.GetException(context.Background(), 1, date)
	require.NoError(t, err)
	require.NotNil(t, exception)
	require.NotNil(t, exception.StartTime)
	assert.Equal(t, "12:00", *exception.StartTime)
	assert.Equal(t, "13:00", *exception.EndTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Закрытый день хранит NULL вместо границ; to_char(NULL) остаётся NULL.
func TestAvailabilityListWeekly_NullTimesForClosedDay(t *testing.T) {
	mock, repo := newAvailabilityRepoMock(t)

	start := "09:00"
	end := "12:00"
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)to_char\(start_time, 'HH24:MI'\), to_char\(end_time, 'HH24:MI'\).+FROM weekly_availability`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "professional_id", "weekday", "start_time", "end_time", "is_closed", "created_at", "updated_at",
		}).
			AddRow(int64(11), int64(1), 5, &start, &end, false, now, now).
			AddRow(int64(12), int64(1), 6, (*string)(nil), (*string)(nil), true, now, now))

	list, err := repo.ListWeekly(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "09:00", *list[0].StartTime)
	assert.True(t, list[1].IsClosed)
	assert.Nil(t, list[1].StartTime)
	assert.Nil(t, list[1].EndTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}
