package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/auth"
	"clinica/pkg/validator"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error) {
	if !validator.ValidateNamePart(dto.FirstName) || !validator.ValidateNamePart(dto.LastName) {
		return 0, fmt.Errorf("%w: некорректное имя или фамилия", domain.ErrDatosInvalidos)
	}

	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))
	if !validator.ValidateEmail(dto.Email) {
		return 0, fmt.Errorf("%w: некорректный email", domain.ErrDatosInvalidos)
	}

	existing, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Error("ошибка проверки email", zap.Error(err))
		return 0, errors.New("ошибка при создании пользователя")
	}
	if existing != nil {
		return 0, errors.New("пользователь с таким email уже существует")
	}

	if !validator.ValidatePassword(dto.Password) {
		return 0, fmt.Errorf("%w: пароль должен содержать не менее 6 символов", domain.ErrDatosInvalidos)
	}

	dto.FirstName = validator.FormatName(dto.FirstName)
	dto.LastName = validator.FormatName(dto.LastName)

	passwordHash, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("ошибка при хешировании пароля", zap.Error(err))
		return 0, errors.New("ошибка при создании пользователя")
	}

	id, err := s.repo.Create(ctx, dto, passwordHash)
	if err != nil {
		s.logger.Error("ошибка при создании пользователя", zap.Error(err))
		return 0, errors.New("ошибка при создании пользователя")
	}

	return id, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения пользователя", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}
	if user == nil {
		return nil, errors.New("пользователь не найден")
	}
	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения пользователя: %w", err)
	}
	if user == nil {
		return errors.New("пользователь не найден")
	}

	if dto.FirstName != nil {
		if !validator.ValidateNamePart(*dto.FirstName) {
			return fmt.Errorf("%w: некорректное имя", domain.ErrDatosInvalidos)
		}
		formatted := validator.FormatName(*dto.FirstName)
		dto.FirstName = &formatted
	}
	if dto.LastName != nil {
		if !validator.ValidateNamePart(*dto.LastName) {
			return fmt.Errorf("%w: некорректная фамилия", domain.ErrDatosInvalidos)
		}
		formatted := validator.FormatName(*dto.LastName)
		dto.LastName = &formatted
	}
	if dto.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*dto.Email))
		if !validator.ValidateEmail(normalized) {
			return fmt.Errorf("%w: некорректный email", domain.ErrDatosInvalidos)
		}
		existing, err := s.repo.GetByEmail(ctx, normalized)
		if err != nil {
			return fmt.Errorf("ошибка проверки email: %w", err)
		}
		if existing != nil && existing.ID != id {
			return errors.New("пользователь с таким email уже существует")
		}
		dto.Email = &normalized
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("ошибка обновления пользователя", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления пользователя: %w", err)
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения пользователя: %w", err)
	}
	if user == nil {
		return errors.New("пользователь не найден")
	}

	ok, err := auth.VerifyPassword(dto.OldPassword, user.PasswordHash)
	if err != nil {
		s.logger.Error("ошибка проверки пароля", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}
	if !ok {
		return errors.New("неверный текущий пароль")
	}

	if !validator.ValidatePassword(dto.NewPassword) {
		return fmt.Errorf("%w: пароль должен содержать не менее 6 символов", domain.ErrDatosInvalidos)
	}

	passwordHash, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		s.logger.Error("ошибка при хешировании пароля", zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	if err := s.repo.UpdatePassword(ctx, id, passwordHash); err != nil {
		s.logger.Error("ошибка обновления пароля", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	return nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления пользователя", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}
	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения списка пользователей", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}
	return users, nil
}
