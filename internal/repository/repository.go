package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinica/internal/domain"
)

// DB - минимальный срез pgxpool.Pool, который используют репозитории.
// В тестах его реализует pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repositories struct {
	User         UserRepository
	Auth         AuthRepository
	Professional ProfessionalRepository
	Patient      PatientRepository
	Consultorio  ConsultorioRepository
	Availability AvailabilityRepository
	Consultation ConsultationRepository
}

func NewRepositories(db DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Auth:         NewAuthRepository(db),
		Professional: NewProfessionalRepository(db),
		Patient:      NewPatientRepository(db),
		Consultorio:  NewConsultorioRepository(db),
		Availability: NewAvailabilityRepository(db),
		Consultation: NewConsultationRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type ProfessionalRepository interface {
	Create(ctx context.Context, professional domain.CreateProfessionalDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	Update(ctx context.Context, id int64, professional domain.UpdateProfessionalDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, int, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient domain.Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	Update(ctx context.Context, patient domain.Patient) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error)
}

type ConsultorioRepository interface {
	Create(ctx context.Context, dto domain.CreateConsultorioDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Consultorio, error)
	Update(ctx context.Context, id int64, dto domain.UpdateConsultorioDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Consultorio, error)
}

type AvailabilityRepository interface {
	UpsertWeekly(ctx context.Context, professionalID int64, dto domain.SetWeeklyAvailabilityDTO) (int64, error)
	GetWeekly(ctx context.Context, professionalID int64, weekday int) (*domain.WeeklyAvailability, error)
	ListWeekly(ctx context.Context, professionalID int64) ([]domain.WeeklyAvailability, error)
	UpsertException(ctx context.Context, professionalID int64, date time.Time, dto domain.SetExceptionDTO) (int64, error)
	GetException(ctx context.Context, professionalID int64, date time.Time) (*domain.AvailabilityException, error)
	ListExceptions(ctx context.Context, filter domain.ExceptionFilter) ([]domain.AvailabilityException, error)
	DeleteException(ctx context.Context, id int64) error
}

type ConsultationRepository interface {
	Create(ctx context.Context, consultation domain.Consultation) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Consultation, error)
	UpdateTime(ctx context.Context, id int64, date time.Time, timeStr string, duration int) error
	UpdateStatus(ctx context.Context, id int64, status domain.ConsultationStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error)
	ListForDay(ctx context.Context, professionalID int64, date time.Time) ([]domain.Consultation, error)
	MarkNoShows(ctx context.Context, now time.Time) (int64, error)

	AddAttachment(ctx context.Context, attachment domain.ConsultationAttachment) (int64, error)
	GetAttachment(ctx context.Context, id int64) (*domain.ConsultationAttachment, error)
	ListAttachments(ctx context.Context, consultationID int64) ([]domain.ConsultationAttachment, error)
	DeleteAttachment(ctx context.Context, id int64) error
}
