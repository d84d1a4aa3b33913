package service

import (
	"context"

	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	User         UserService
	Auth         AuthService
	Professional ProfessionalService
	Patient      PatientService
	Consultorio  ConsultorioService
	Availability AvailabilityService
	Consultation ConsultationService
}

func NewServices(deps Deps) *Services {
	return &Services{
		User:         NewUserService(deps.Repos.User, deps.Logger),
		Auth:         NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Professional: NewProfessionalService(deps.Repos.Professional, deps.Logger),
		Patient:      NewPatientService(deps.Repos.Patient, deps.Repos.Professional, deps.Logger),
		Consultorio:  NewConsultorioService(deps.Repos.Consultorio, deps.Logger),
		Availability: NewAvailabilityService(deps.Repos.Availability, deps.Repos.Consultation, deps.Repos.Professional, deps.Logger),
		Consultation: NewConsultationService(deps.Repos.Consultation, deps.Repos.Patient, deps.Repos.Professional, deps.Repos.Consultorio, deps.FileStorage, deps.Logger),
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, tokenString string) (int64, domain.UserRole, error)
}

type ProfessionalService interface {
	Create(ctx context.Context, dto domain.CreateProfessionalDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, int, error)
}

type PatientService interface {
	Create(ctx context.Context, dto domain.CreatePatientDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error)
}

type ConsultorioService interface {
	Create(ctx context.Context, dto domain.CreateConsultorioDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Consultorio, error)
	Update(ctx context.Context, id int64, dto domain.UpdateConsultorioDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Consultorio, error)
}

type AvailabilityService interface {
	SetWeekly(ctx context.Context, professionalID int64, dtos []domain.SetWeeklyAvailabilityDTO) error
	GetWeekly(ctx context.Context, professionalID int64) ([]domain.WeeklyAvailability, error)
	SetException(ctx context.Context, professionalID int64, dto domain.SetExceptionDTO) (int64, error)
	ListExceptions(ctx context.Context, filter domain.ExceptionFilter) ([]domain.AvailabilityException, error)
	DeleteException(ctx context.Context, id int64) error
	GenerateSlots(ctx context.Context, professionalID int64, dateStr string, durationMinutes, stepMinutes int) ([]string, error)
}

type ConsultationService interface {
	Create(ctx context.Context, dto domain.CreateConsultationDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Consultation, error)
	UpdateTime(ctx context.Context, id int64, dto domain.UpdateConsultationTimeDTO) error
	Reschedule(ctx context.Context, id int64, dto domain.RescheduleConsultationDTO) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error)
	MarkOverdueNoShows(ctx context.Context) (int64, error)

	AddAttachment(ctx context.Context, consultationID int64, filename, contentType string, data []byte) (int64, error)
	GetAttachment(ctx context.Context, id int64) (*domain.ConsultationAttachment, []byte, error)
	ListAttachments(ctx context.Context, consultationID int64) ([]domain.ConsultationAttachment, error)
	DeleteAttachment(ctx context.Context, id int64) error
}
