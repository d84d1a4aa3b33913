package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
)

type ConsultorioServiceImpl struct {
	repo   repository.ConsultorioRepository
	logger *zap.Logger
}

func NewConsultorioService(repo repository.ConsultorioRepository, logger *zap.Logger) *ConsultorioServiceImpl {
	return &ConsultorioServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ConsultorioServiceImpl) Create(ctx context.Context, dto domain.CreateConsultorioDTO) (int64, error) {
	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		return 0, fmt.Errorf("%w: имя консультория не может быть пустым", domain.ErrDatosInvalidos)
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания консультория", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания консультория: %w", err)
	}

	return id, nil
}

func (s *ConsultorioServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Consultorio, error) {
	consultorio, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения консультория", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения консультория: %w", err)
	}
	return consultorio, nil
}

func (s *ConsultorioServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateConsultorioDTO) error {
	consultorio, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения консультория: %w", err)
	}
	if consultorio == nil {
		return errors.New("консульторий не найден")
	}

	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		return fmt.Errorf("%w: имя консультория не может быть пустым", domain.ErrDatosInvalidos)
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("ошибка обновления консультория", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления консультория: %w", err)
	}

	return nil
}

func (s *ConsultorioServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления консультория", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления консультория: %w", err)
	}
	return nil
}

func (s *ConsultorioServiceImpl) List(ctx context.Context) ([]domain.Consultorio, error) {
	consultorios, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения списка консульториев", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения списка консульториев: %w", err)
	}
	return consultorios, nil
}
