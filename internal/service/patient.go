package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/validator"
)

type PatientServiceImpl struct {
	repo             repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	logger           *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, professionalRepo repository.ProfessionalRepository, logger *zap.Logger) *PatientServiceImpl {
	return &PatientServiceImpl{
		repo:             repo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

func (s *PatientServiceImpl) Create(ctx context.Context, dto domain.CreatePatientDTO) (int64, error) {
	if !validator.ValidateNamePart(dto.FirstName) || !validator.ValidateNamePart(dto.LastName) {
		return 0, fmt.Errorf("%w: некорректное имя или фамилия", domain.ErrDatosInvalidos)
	}

	if dto.Email != "" && !validator.ValidateEmail(dto.Email) {
		return 0, fmt.Errorf("%w: некорректный email", domain.ErrDatosInvalidos)
	}

	if dto.Phone != "" && !validator.ValidatePhone(dto.Phone) {
		return 0, fmt.Errorf("%w: некорректный номер телефона", domain.ErrDatosInvalidos)
	}

	if dto.ProfessionalID != nil {
		professional, err := s.professionalRepo.GetByID(ctx, *dto.ProfessionalID)
		if err != nil {
			return 0, fmt.Errorf("ошибка получения профессионала: %w", err)
		}
		if professional == nil {
			return 0, errors.New("профессионал не найден")
		}
	}

	patient := domain.Patient{
		FirstName:      validator.FormatName(dto.FirstName),
		LastName:       validator.FormatName(dto.LastName),
		Email:          dto.Email,
		Phone:          formatOptionalPhone(dto.Phone),
		Address:        dto.Address,
		ProfessionalID: dto.ProfessionalID,
	}

	if dto.DateOfBirth != "" {
		dateOfBirth, err := time.Parse("2006-01-02", dto.DateOfBirth)
		if err != nil {
			return 0, fmt.Errorf("%w: неверный формат даты рождения, ожидается YYYY-MM-DD", domain.ErrDatosInvalidos)
		}
		patient.DateOfBirth = &dateOfBirth
	}

	id, err := s.repo.Create(ctx, patient)
	if err != nil {
		s.logger.Error("ошибка создания пациента", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания пациента: %w", err)
	}

	return id, nil
}

func formatOptionalPhone(phone string) string {
	if phone == "" {
		return ""
	}
	return validator.FormatPhone(phone)
}

func (s *PatientServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения пациента", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения пациента: %w", err)
	}
	return patient, nil
}

func (s *PatientServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения пациента: %w", err)
	}
	if patient == nil {
		return errors.New("пациент не найден")
	}

	if dto.FirstName != nil {
		patient.FirstName = validator.FormatName(*dto.FirstName)
	}
	if dto.LastName != nil {
		patient.LastName = validator.FormatName(*dto.LastName)
	}
	if dto.Email != nil {
		if *dto.Email != "" && !validator.ValidateEmail(*dto.Email) {
			return fmt.Errorf("%w: некорректный email", domain.ErrDatosInvalidos)
		}
		patient.Email = *dto.Email
	}
	if dto.Phone != nil {
		if *dto.Phone != "" && !validator.ValidatePhone(*dto.Phone) {
			return fmt.Errorf("%w: некорректный номер телефона", domain.ErrDatosInvalidos)
		}
		patient.Phone = formatOptionalPhone(*dto.Phone)
	}
	if dto.Address != nil {
		patient.Address = *dto.Address
	}
	if dto.ProfessionalID != nil {
		professional, err := s.professionalRepo.GetByID(ctx, *dto.ProfessionalID)
		if err != nil {
			return fmt.Errorf("ошибка получения профессионала: %w", err)
		}
		if professional == nil {
			return errors.New("профессионал не найден")
		}
		patient.ProfessionalID = dto.ProfessionalID
	}
	if dto.DateOfBirth != nil && *dto.DateOfBirth != "" {
		dateOfBirth, err := time.Parse("2006-01-02", *dto.DateOfBirth)
		if err != nil {
			return fmt.Errorf("%w: неверный формат даты рождения, ожидается YYYY-MM-DD", domain.ErrDatosInvalidos)
		}
		patient.DateOfBirth = &dateOfBirth
	}

	if err := s.repo.Update(ctx, *patient); err != nil {
		s.logger.Error("ошибка обновления пациента", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления пациента: %w", err)
	}

	return nil
}

func (s *PatientServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления пациента", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления пациента: %w", err)
	}
	return nil
}

func (s *PatientServiceImpl) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error) {
	patients, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка пациентов", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка пациентов: %w", err)
	}
	return patients, total, nil
}
