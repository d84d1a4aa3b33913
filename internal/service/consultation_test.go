package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

type recordingConsultationRepo struct {
	fakeConsultationRepo

	stored    *domain.Consultation
	createErr error

	created        *domain.Consultation
	updatedDate    *time.Time
	updatedTime    string
	updatedDur     int
	updatedStatus  domain.ConsultationStatus
	markNoShowsNow time.Time
	updateTimeErr  error
}

func (r *recordingConsultationRepo) Create(_ context.Context, c domain.Consultation) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.created = &c
	return 42, nil
}

func (r *recordingConsultationRepo) GetByID(_ context.Context, _ int64) (*domain.Consultation, error) {
	return r.stored, nil
}

func (r *recordingConsultationRepo) UpdateTime(_ context.Context, _ int64, date time.Time, timeStr string, duration int) error {
	if r.updateTimeErr != nil {
		return r.updateTimeErr
	}
	r.updatedDate = &date
	r.updatedTime = timeStr
	r.updatedDur = duration
	return nil
}

func (r *recordingConsultationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ConsultationStatus) error {
	r.updatedStatus = status
	return nil
}

func (r *recordingConsultationRepo) MarkNoShows(_ context.Context, now time.Time) (int64, error) {
	r.markNoShowsNow = now
	return 3, nil
}

type fakePatientRepo struct{}

func (r *fakePatientRepo) Create(_ context.Context, _ domain.Patient) (int64, error) {
	return 0, nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id int64) (*domain.Patient, error) {
	if id == 1 {
		return &domain.Patient{ID: 1, FirstName: "Мария", LastName: "Перес"}, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) Update(_ context.Context, _ domain.Patient) error {
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (r *fakePatientRepo) List(_ context.Context, _ domain.PatientFilter) ([]domain.Patient, int, error) {
	return nil, 0, nil
}

type fakeConsultorioRepo struct{}

func (r *fakeConsultorioRepo) Create(_ context.Context, _ domain.CreateConsultorioDTO) (int64, error) {
	return 0, nil
}

func (r *fakeConsultorioRepo) GetByID(_ context.Context, id int64) (*domain.Consultorio, error) {
	if id == 5 {
		return &domain.Consultorio{ID: 5, Name: "Кабинет 1"}, nil
	}
	return nil, nil
}

func (r *fakeConsultorioRepo) Update(_ context.Context, _ int64, _ domain.UpdateConsultorioDTO) error {
	return nil
}

func (r *fakeConsultorioRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (r *fakeConsultorioRepo) List(_ context.Context) ([]domain.Consultorio, error) {
	return nil, nil
}

var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestConsultationService(repo *recordingConsultationRepo) *ConsultationServiceImpl {
	svc := NewConsultationService(repo, &fakePatientRepo{}, newFakeProfessionalRepo(), &fakeConsultorioRepo{}, nil, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validCreateDTO() domain.CreateConsultationDTO {
	consultorioID := int64(5)
	return domain.CreateConsultationDTO{
		PatientID:      1,
		ProfessionalID: 1,
		ConsultorioID:  &consultorioID,
		Date:           mondayDate,
		Time:           "10:00",
		Duration:       60,
	}
}

func TestConsultationCreate_OK(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)

	id, err := svc.Create(context.Background(), validCreateDTO())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	require.NotNil(t, repo.created)
	assert.Equal(t, "10:00", repo.created.Time)
	assert.Equal(t, 60, repo.created.Duration)
}

func TestConsultationCreate_DefaultDuration(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)

	dto := validCreateDTO()
	dto.Duration = 0

	_, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConsultationDuration, repo.created.Duration)
}

func TestConsultationCreate_PastDateRejected(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)

	dto := validCreateDTO()
	dto.Date = "2026-08-31"

	_, err := svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrFechaPasada)
	assert.Nil(t, repo.created)
}

func TestConsultationCreate_TodayAllowed(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)

	dto := validCreateDTO()
	dto.Date = "2026-09-01"

	_, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)
}

// Сегодняшняя дата принимается и в западных часовых поясах: сравниваются
// календарные даты, а не моменты UTC-полуночи.
func TestConsultationCreate_TodayAllowedInWesternTimezone(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 1, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	}

	dto := validCreateDTO()
	dto.Date = "2026-09-01"

	_, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)

	dto.Date = "2026-08-31"
	_, err = svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrFechaPasada)
}

func TestConsultationCreate_ConflictPropagated(t *testing.T) {
	repo := &recordingConsultationRepo{createErr: domain.ErrConsultorioOcupado}
	svc := newTestConsultationService(repo)

	_, err := svc.Create(context.Background(), validCreateDTO())
	assert.ErrorIs(t, err, domain.ErrConsultorioOcupado)
}

func TestConsultationCreate_UnknownReferences(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)

	dto := validCreateDTO()
	dto.PatientID = 99
	_, err := svc.Create(context.Background(), dto)
	assert.Error(t, err)

	dto = validCreateDTO()
	dto.ProfessionalID = 99
	_, err = svc.Create(context.Background(), dto)
	assert.Error(t, err)

	dto = validCreateDTO()
	unknown := int64(99)
	dto.ConsultorioID = &unknown
	_, err = svc.Create(context.Background(), dto)
	assert.Error(t, err)
}

func TestConsultationCreate_NegativeDuration(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)

	dto := validCreateDTO()
	dto.Duration = -30

	_, err := svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)
}

func storedConsultation() *domain.Consultation {
	date, _ := time.Parse("2006-01-02", mondayDate)
	return &domain.Consultation{
		ID:             7,
		PatientID:      1,
		ProfessionalID: 1,
		Date:           date,
		Time:           "10:00",
		Duration:       60,
		Status:         domain.ConsultationStatusAttended,
	}
}

func TestConsultationUpdateTime_PartialMerge(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	svc := newTestConsultationService(repo)

	newTime := "14:30"
	err := svc.UpdateTime(context.Background(), 7, domain.UpdateConsultationTimeDTO{Time: &newTime})
	require.NoError(t, err)

	// Дата и длительность берутся из существующей записи.
	assert.Equal(t, mondayDate, repo.updatedDate.Format("2006-01-02"))
	assert.Equal(t, "14:30", repo.updatedTime)
	assert.Equal(t, 60, repo.updatedDur)
}

func TestConsultationUpdateTime_ConflictPropagated(t *testing.T) {
	repo := &recordingConsultationRepo{
		stored:        storedConsultation(),
		updateTimeErr: domain.ErrConsultorioOcupado,
	}
	svc := newTestConsultationService(repo)

	newTime := "14:30"
	err := svc.UpdateTime(context.Background(), 7, domain.UpdateConsultationTimeDTO{Time: &newTime})
	assert.ErrorIs(t, err, domain.ErrConsultorioOcupado)
}

func TestConsultationUpdateTime_PastDateRejected(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	svc := newTestConsultationService(repo)

	pastDate := "2026-08-30"
	err := svc.UpdateTime(context.Background(), 7, domain.UpdateConsultationTimeDTO{Date: &pastDate})
	assert.ErrorIs(t, err, domain.ErrFechaPasada)
}

func TestConsultationUpdateTime_NotFound(t *testing.T) {
	repo := &recordingConsultationRepo{stored: nil}
	svc := newTestConsultationService(repo)

	newTime := "14:30"
	err := svc.UpdateTime(context.Background(), 7, domain.UpdateConsultationTimeDTO{Time: &newTime})
	assert.Error(t, err)
}

func TestReschedule_CancelMode(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	svc := newTestConsultationService(repo)

	err := svc.Reschedule(context.Background(), 7, domain.RescheduleConsultationDTO{
		Mode: domain.RescheduleModeCancel,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ConsultationStatusCancelled, repo.updatedStatus)
}

func TestReschedule_RescheduleMode(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	svc := newTestConsultationService(repo)

	err := svc.Reschedule(context.Background(), 7, domain.RescheduleConsultationDTO{
		Mode: domain.RescheduleModeReschedule,
		Date: "2026-09-08",
		Time: "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-08", repo.updatedDate.Format("2006-01-02"))
	assert.Equal(t, "11:00", repo.updatedTime)
	assert.Equal(t, 60, repo.updatedDur)
}

func TestReschedule_RescheduleModeRequiresDateAndTime(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	svc := newTestConsultationService(repo)

	err := svc.Reschedule(context.Background(), 7, domain.RescheduleConsultationDTO{
		Mode: domain.RescheduleModeReschedule,
	})
	assert.ErrorIs(t, err, domain.ErrDatosInvalidos)
}

func TestCancel(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	svc := newTestConsultationService(repo)

	err := svc.Cancel(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.ConsultationStatusCancelled, repo.updatedStatus)
}

func TestMarkOverdueNoShows_UsesInjectedClock(t *testing.T) {
	repo := &recordingConsultationRepo{}
	svc := newTestConsultationService(repo)

	count, err := svc.MarkOverdueNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, fixedNow, repo.markNoShowsNow)
}

type fakeFileStorage struct {
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{uploads: make(map[string][]byte)}
}

func (s *fakeFileStorage) Upload(_ context.Context, objectKey string, data []byte, _ string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads[objectKey] = data
	return nil
}

func (s *fakeFileStorage) Download(_ context.Context, objectKey string) ([]byte, error) {
	data, ok := s.uploads[objectKey]
	if !ok {
		return nil, errors.New("объект не найден")
	}
	return data, nil
}

func (s *fakeFileStorage) Delete(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func TestAddAttachment(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	storage := newFakeFileStorage()
	svc := newTestConsultationService(repo)
	svc.fileStorage = storage

	_, err := svc.AddAttachment(context.Background(), 7, "анализы.pdf", "application/pdf", []byte("data"))
	require.NoError(t, err)
	require.Len(t, storage.uploads, 1)
	for key := range storage.uploads {
		assert.Contains(t, key, "consultations/7/")
		assert.Contains(t, key, ".pdf")
	}
}

func TestAddAttachment_NoStorageConfigured(t *testing.T) {
	repo := &recordingConsultationRepo{stored: storedConsultation()}
	svc := newTestConsultationService(repo)

	_, err := svc.AddAttachment(context.Background(), 7, "анализы.pdf", "application/pdf", []byte("data"))
	assert.Error(t, err)
}
