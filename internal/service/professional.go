package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/validator"
)

type ProfessionalServiceImpl struct {
	repo   repository.ProfessionalRepository
	logger *zap.Logger
}

func NewProfessionalService(repo repository.ProfessionalRepository, logger *zap.Logger) *ProfessionalServiceImpl {
	return &ProfessionalServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProfessionalServiceImpl) Create(ctx context.Context, dto domain.CreateProfessionalDTO) (int64, error) {
	if !validator.ValidateNamePart(dto.FirstName) || !validator.ValidateNamePart(dto.LastName) {
		return 0, fmt.Errorf("%w: некорректное имя или фамилия", domain.ErrDatosInvalidos)
	}

	if dto.Email != "" && !validator.ValidateEmail(dto.Email) {
		return 0, fmt.Errorf("%w: некорректный email", domain.ErrDatosInvalidos)
	}

	if dto.Phone != "" && !validator.ValidatePhone(dto.Phone) {
		return 0, fmt.Errorf("%w: некорректный номер телефона", domain.ErrDatosInvalidos)
	}

	dto.FirstName = validator.FormatName(dto.FirstName)
	dto.LastName = validator.FormatName(dto.LastName)
	dto.Phone = formatOptionalPhone(dto.Phone)

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания профессионала", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания профессионала: %w", err)
	}

	return id, nil
}

func (s *ProfessionalServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	professional, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения профессионала", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения профессионала: %w", err)
	}
	return professional, nil
}

func (s *ProfessionalServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	professional, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ошибка получения профессионала", zap.Int64("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения профессионала: %w", err)
	}
	return professional, nil
}

func (s *ProfessionalServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error {
	professional, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения профессионала: %w", err)
	}
	if professional == nil {
		return errors.New("профессионал не найден")
	}

	if dto.Email != nil && *dto.Email != "" && !validator.ValidateEmail(*dto.Email) {
		return fmt.Errorf("%w: некорректный email", domain.ErrDatosInvalidos)
	}

	if dto.Phone != nil && *dto.Phone != "" {
		if !validator.ValidatePhone(*dto.Phone) {
			return fmt.Errorf("%w: некорректный номер телефона", domain.ErrDatosInvalidos)
		}
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("ошибка обновления профессионала", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления профессионала: %w", err)
	}

	return nil
}

func (s *ProfessionalServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления профессионала", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления профессионала: %w", err)
	}
	return nil
}

func (s *ProfessionalServiceImpl) List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, int, error) {
	professionals, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка профессионалов", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка профессионалов: %w", err)
	}
	return professionals, total, nil
}
