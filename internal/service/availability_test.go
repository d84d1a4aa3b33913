package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// 2026-09-07 - понедельник.
const mondayDate = "2026-09-07"

type fakeAvailabilityRepo struct {
	weekly     map[int]*domain.WeeklyAvailability
	exceptions map[string]*domain.AvailabilityException
	upserted   []domain.SetWeeklyAvailabilityDTO
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{
		weekly:     make(map[int]*domain.WeeklyAvailability),
		exceptions: make(map[string]*domain.AvailabilityException),
	}
}

func (r *fakeAvailabilityRepo) UpsertWeekly(_ context.Context, _ int64, dto domain.SetWeeklyAvailabilityDTO) (int64, error) {
	r.upserted = append(r.upserted, dto)
	return int64(len(r.upserted)), nil
}

func (r *fakeAvailabilityRepo) GetWeekly(_ context.Context, _ int64, weekday int) (*domain.WeeklyAvailability, error) {
	return r.weekly[weekday], nil
}

func (r *fakeAvailabilityRepo) ListWeekly(_ context.Context, _ int64) ([]domain.WeeklyAvailability, error) {
	var result []domain.WeeklyAvailability
	for _, w := range r.weekly {
		result = append(result, *w)
	}
	return result, nil
}

func (r *fakeAvailabilityRepo) UpsertException(_ context.Context, _ int64, date time.Time, _ domain.SetExceptionDTO) (int64, error) {
	return 1, nil
}

func (r *fakeAvailabilityRepo) GetException(_ context.Context, _ int64, date time.Time) (*domain.AvailabilityException, error) {
	return r.exceptions[date.Format("2006-01-02")], nil
}

func (r *fakeAvailabilityRepo) ListExceptions(_ context.Context, _ domain.ExceptionFilter) ([]domain.AvailabilityException, error) {
	return nil, nil
}

func (r *fakeAvailabilityRepo) DeleteException(_ context.Context, _ int64) error {
	return nil
}

type fakeConsultationRepo struct {
	forDay []domain.Consultation
}

func (r *fakeConsultationRepo) Create(_ context.Context, _ domain.Consultation) (int64, error) {
	return 0, nil
}

func (r *fakeConsultationRepo) GetByID(_ context.Context, _ int64) (*domain.Consultation, error) {
	return nil, nil
}

func (r *fakeConsultationRepo) UpdateTime(_ context.Context, _ int64, _ time.Time, _ string, _ int) error {
	return nil
}

func (r *fakeConsultationRepo) UpdateStatus(_ context.Context, _ int64, _ domain.ConsultationStatus) error {
	return nil
}

func (r *fakeConsultationRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (r *fakeConsultationRepo) List(_ context.Context, _ domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	return nil, 0, nil
}

func (r *fakeConsultationRepo) ListForDay(_ context.Context, _ int64, _ time.Time) ([]domain.Consultation, error) {
	return r.forDay, nil
}

func (r *fakeConsultationRepo) MarkNoShows(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeConsultationRepo) AddAttachment(_ context.Context, _ domain.ConsultationAttachment) (int64, error) {
	return 0, nil
}

func (r *fakeConsultationRepo) GetAttachment(_ context.Context, _ int64) (*domain.ConsultationAttachment, error) {
	return nil, nil
}

func (r *fakeConsultationRepo) ListAttachments(_ context.Context, _ int64) ([]domain.ConsultationAttachment, error) {
	return nil, nil
}

func (r *fakeConsultationRepo) DeleteAttachment(_ context.Context, _ int64) error {
	return nil
}

type fakeProfessionalRepo struct {
	professionals map[int64]*domain.Professional
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{
		professionals: map[int64]*domain.Professional{
			1: {ID: 1, FirstName: "Анна", LastName: "Иванова", Role: domain.ProfessionalRolePsychologist},
		},
	}
}

func (r *fakeProfessionalRepo) Create(_ context.Context, _ domain.CreateProfessionalDTO) (int64, error) {
	return 0, nil
}

func (r *fakeProfessionalRepo) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	return r.professionals[id], nil
}

func (r *fakeProfessionalRepo) GetByUserID(_ context.Context, _ int64) (*domain.Professional, error) {
	return nil, nil
}

func (r *fakeProfessionalRepo) Update(_ context.Context, _ int64, _ domain.UpdateProfessionalDTO) error {
	return nil
}

func (r *fakeProfessionalRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (r *fakeProfessionalRepo) List(_ context.Context, _ domain.ProfessionalFilter) ([]domain.Professional, int, error) {
	return nil, 0, nil
}

func strPtr(s string) *string {
	return &s
}

func newTestAvailabilityService(availRepo *fakeAvailabilityRepo, consultRepo *fakeConsultationRepo) *AvailabilityServiceImpl {
	return NewAvailabilityService(availRepo, consultRepo, newFakeProfessionalRepo(), zap.NewNop())
}

func openMonday(repo *fakeAvailabilityRepo) {
	repo.weekly[0] = &domain.WeeklyAvailability{
		ProfessionalID: 1,
		Weekday:        0,
		StartTime:      strPtr("09:00"),
		EndTime:        strPtr("17:00"),
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)

	// 09:00 .. 16:00 с шагом 30 минут, последний старт оставляет час до 17:00.
	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "16:00", slots[14])
}

func TestGenerateSlots_GridIndependentOfDuration(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 90, 30)
	require.NoError(t, err)

	// Сетка начал остается 30-минутной, укорачивается только хвост.
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "15:30", slots[len(slots)-1])
}

func TestGenerateSlots_ExistingConsultationExcluded(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	consultRepo := &fakeConsultationRepo{
		forDay: []domain.Consultation{
			{ID: 10, Time: "10:00", Duration: 60},
		},
	}
	svc := newTestAvailabilityService(availRepo, consultRepo)

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)

	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	// Встык разрешено с обеих сторон.
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
	assert.Len(t, slots, 12)
}

func TestGenerateSlots_ZeroDurationConsultationDefaultsToHour(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	consultRepo := &fakeConsultationRepo{
		forDay: []domain.Consultation{
			{ID: 10, Time: "10:00", Duration: 0},
		},
	}
	svc := newTestAvailabilityService(availRepo, consultRepo)

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
}

func TestGenerateSlots_ExceptionBlocksInterval(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	availRepo.exceptions[mondayDate] = &domain.AvailabilityException{
		ProfessionalID: 1,
		StartTime:      strPtr("12:00"),
		EndTime:        strPtr("13:00"),
	}
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)

	// Интервал исключения блокирует участок, не заменяя окно дня.
	assert.NotContains(t, slots, "11:30")
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:30")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "13:00")
	assert.Contains(t, slots, "16:00")
}

func TestGenerateSlots_ClosedByException(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	availRepo.exceptions[mondayDate] = &domain.AvailabilityException{
		ProfessionalID: 1,
		IsClosed:       true,
	}
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerateSlots_NoTemplateMeansClosed(t *testing.T) {
	svc := newTestAvailabilityService(newFakeAvailabilityRepo(), &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ClosedWeekday(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	availRepo.weekly[0] = &domain.WeeklyAvailability{
		ProfessionalID: 1,
		Weekday:        0,
		IsClosed:       true,
		StartTime:      strPtr("09:00"),
		EndTime:        strPtr("17:00"),
	}
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_OpenDayWithoutBoundsMeansClosed(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	availRepo.weekly[0] = &domain.WeeklyAvailability{
		ProfessionalID: 1,
		Weekday:        0,
	}
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_MalformedTemplateTimeMeansClosed(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	availRepo.weekly[0] = &domain.WeeklyAvailability{
		ProfessionalID: 1,
		Weekday:        0,
		StartTime:      strPtr("пятница"),
		EndTime:        strPtr("17:00"),
	}
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	slots, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	first, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)
	second, err := svc.GenerateSlots(context.Background(), 1, mondayDate, 60, 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	_, err := svc.GenerateSlots(context.Background(), 1, "07.09.2026", 60, 30)
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)

	_, err = svc.GenerateSlots(context.Background(), 1, mondayDate, 0, 30)
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)

	_, err = svc.GenerateSlots(context.Background(), 1, mondayDate, 60, -15)
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)
}

func TestGenerateSlots_UnknownProfessional(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	openMonday(availRepo)
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	_, err := svc.GenerateSlots(context.Background(), 99, mondayDate, 60, 30)
	assert.Error(t, err)
}

func TestSetWeekly_Validation(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	err := svc.SetWeekly(context.Background(), 1, []domain.SetWeeklyAvailabilityDTO{
		{Weekday: 0, StartTime: strPtr("17:00"), EndTime: strPtr("09:00")},
	})
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)

	err = svc.SetWeekly(context.Background(), 1, []domain.SetWeeklyAvailabilityDTO{
		{Weekday: 7, StartTime: strPtr("09:00"), EndTime: strPtr("17:00")},
	})
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)

	err = svc.SetWeekly(context.Background(), 1, []domain.SetWeeklyAvailabilityDTO{
		{Weekday: 0, IsClosed: false},
	})
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)

	assert.Empty(t, availRepo.upserted)
}

func TestSetWeekly_ClosedDayDropsBounds(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	err := svc.SetWeekly(context.Background(), 1, []domain.SetWeeklyAvailabilityDTO{
		{Weekday: 6, IsClosed: true, StartTime: strPtr("09:00"), EndTime: strPtr("17:00")},
	})
	require.NoError(t, err)
	require.Len(t, availRepo.upserted, 1)
	assert.Nil(t, availRepo.upserted[0].StartTime)
	assert.Nil(t, availRepo.upserted[0].EndTime)
}

func TestSetException_InvalidRange(t *testing.T) {
	availRepo := newFakeAvailabilityRepo()
	svc := newTestAvailabilityService(availRepo, &fakeConsultationRepo{})

	_, err := svc.SetException(context.Background(), 1, domain.SetExceptionDTO{
		Date:      mondayDate,
		StartTime: strPtr("13:00"),
		EndTime:   strPtr("12:00"),
	})
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)

	_, err = svc.SetException(context.Background(), 1, domain.SetExceptionDTO{
		Date: "вчера",
	})
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)
}

func TestWeekdayIndex(t *testing.T) {
	monday, err := time.Parse("2006-01-02", mondayDate)
	require.NoError(t, err)

	assert.Equal(t, 0, weekdayIndex(monday))
	assert.Equal(t, 5, weekdayIndex(monday.AddDate(0, 0, 5)))
	assert.Equal(t, 6, weekdayIndex(monday.AddDate(0, 0, 6)))
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	// Встык не пересекается.
	assert.False(t, overlaps(base, base.Add(time.Hour), base.Add(time.Hour), base.Add(2*time.Hour)))
	// Частичное перекрытие.
	assert.True(t, overlaps(base, base.Add(time.Hour), base.Add(30*time.Minute), base.Add(90*time.Minute)))
	// Вложение.
	assert.True(t, overlaps(base, base.Add(2*time.Hour), base.Add(30*time.Minute), base.Add(time.Hour)))
}
