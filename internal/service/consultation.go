package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/storage"
	"clinica/pkg/validator"
)

type ConsultationServiceImpl struct {
	repo             repository.ConsultationRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	consultorioRepo  repository.ConsultorioRepository
	fileStorage      storage.FileStorage
	logger           *zap.Logger
	now              func() time.Time
}

func NewConsultationService(
	repo repository.ConsultationRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
	consultorioRepo repository.ConsultorioRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *ConsultationServiceImpl {
	return &ConsultationServiceImpl{
		repo:             repo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		consultorioRepo:  consultorioRepo,
		fileStorage:      fileStorage,
		logger:           logger,
		now:              time.Now,
	}
}

// Create записывает консультацию. На пути записи проверяются только занятость
// кабинета и запрет дат в прошлом: окно доступности профессионала намеренно
// не перепроверяется, персонал может назначить консультацию вне объявленных
// часов.
func (s *ConsultationServiceImpl) Create(ctx context.Context, dto domain.CreateConsultationDTO) (int64, error) {
	patient, err := s.patientRepo.GetByID(ctx, dto.PatientID)
	if err != nil {
		return 0, fmt.Errorf("ошибка получения пациента: %w", err)
	}
	if patient == nil {
		return 0, errors.New("пациент не найден")
	}

	professional, err := s.professionalRepo.GetByID(ctx, dto.ProfessionalID)
	if err != nil {
		return 0, fmt.Errorf("ошибка получения профессионала: %w", err)
	}
	if professional == nil {
		return 0, errors.New("профессионал не найден")
	}

	if dto.ConsultorioID != nil {
		consultorio, err := s.consultorioRepo.GetByID(ctx, *dto.ConsultorioID)
		if err != nil {
			return 0, fmt.Errorf("ошибка получения консультория: %w", err)
		}
		if consultorio == nil {
			return 0, errors.New("консульторий не найден")
		}
	}

	date, timeStr, duration, err := s.validateSchedule(dto.Date, dto.Time, dto.Duration)
	if err != nil {
		return 0, err
	}

	consultation := domain.Consultation{
		PatientID:       dto.PatientID,
		ProfessionalID:  dto.ProfessionalID,
		ConsultorioID:   dto.ConsultorioID,
		ConsultorioName: dto.ConsultorioName,
		Date:            date,
		Time:            timeStr,
		Duration:        duration,
		Charge:          dto.Charge,
		Notes:           validator.SanitizeString(dto.Notes),
	}

	id, err := s.repo.Create(ctx, consultation)
	if err != nil {
		if errors.Is(err, domain.ErrConsultorioOcupado) {
			return 0, err
		}
		s.logger.Error("ошибка создания консультации", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания консультации: %w", err)
	}

	return id, nil
}

// UpdateTime - перетаскивание или изменение длительности в календаре.
// Успешное перемещение возвращает консультацию в статус pending.
func (s *ConsultationServiceImpl) UpdateTime(ctx context.Context, id int64, dto domain.UpdateConsultationTimeDTO) error {
	consultation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения консультации: %w", err)
	}
	if consultation == nil {
		return errors.New("консультация не найдена")
	}

	dateStr := consultation.Date.Format("2006-01-02")
	if dto.Date != nil {
		dateStr = *dto.Date
	}

	timeStr := consultation.Time
	if dto.Time != nil {
		timeStr = *dto.Time
	}

	duration := consultation.Duration
	if dto.Duration != nil {
		duration = *dto.Duration
	}

	date, timeStr, duration, err := s.validateSchedule(dateStr, timeStr, duration)
	if err != nil {
		return err
	}

	err = s.repo.UpdateTime(ctx, id, date, timeStr, duration)
	if err != nil {
		if errors.Is(err, domain.ErrConsultorioOcupado) {
			return err
		}
		s.logger.Error("ошибка переноса консультации", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка переноса консультации: %w", err)
	}

	return nil
}

// Reschedule обрабатывает запрос отмены или переноса: отмена переводит
// консультацию в cancelled, перенос валидируется так же, как создание.
func (s *ConsultationServiceImpl) Reschedule(ctx context.Context, id int64, dto domain.RescheduleConsultationDTO) error {
	consultation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения консультации: %w", err)
	}
	if consultation == nil {
		return errors.New("консультация не найдена")
	}

	if dto.Mode == domain.RescheduleModeCancel {
		if err := s.repo.UpdateStatus(ctx, id, domain.ConsultationStatusCancelled); err != nil {
			s.logger.Error("ошибка отмены консультации", zap.Int64("id", id), zap.Error(err))
			return fmt.Errorf("ошибка отмены консультации: %w", err)
		}
		return nil
	}

	if dto.Date == "" || dto.Time == "" {
		return fmt.Errorf("%w: для переноса нужны новые дата и время", domain.ErrDatosInvalidos)
	}

	date, timeStr, duration, err := s.validateSchedule(dto.Date, dto.Time, consultation.Duration)
	if err != nil {
		return err
	}

	err = s.repo.UpdateTime(ctx, id, date, timeStr, duration)
	if err != nil {
		if errors.Is(err, domain.ErrConsultorioOcupado) {
			return err
		}
		s.logger.Error("ошибка переноса консультации", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка переноса консультации: %w", err)
	}

	return nil
}

func (s *ConsultationServiceImpl) Cancel(ctx context.Context, id int64) error {
	consultation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения консультации: %w", err)
	}
	if consultation == nil {
		return errors.New("консультация не найдена")
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.ConsultationStatusCancelled); err != nil {
		s.logger.Error("ошибка отмены консультации", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка отмены консультации: %w", err)
	}

	return nil
}

func (s *ConsultationServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Consultation, error) {
	consultation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения консультации", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения консультации: %w", err)
	}
	return consultation, nil
}

func (s *ConsultationServiceImpl) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	consultations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка консультаций", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка консультаций: %w", err)
	}
	return consultations, total, nil
}

// MarkOverdueNoShows - фоновая сверка: pending-консультации с прошедшим
// временем окончания переводятся в no_show.
func (s *ConsultationServiceImpl) MarkOverdueNoShows(ctx context.Context) (int64, error) {
	count, err := s.repo.MarkNoShows(ctx, s.now())
	if err != nil {
		s.logger.Error("ошибка отметки неявок", zap.Error(err))
		return 0, fmt.Errorf("ошибка отметки неявок: %w", err)
	}

	if count > 0 {
		s.logger.Info("консультации отмечены как неявка", zap.Int64("count", count))
	}

	return count, nil
}

// validateSchedule разбирает и проверяет дату, время и длительность.
// Дата раньше сегодняшней отклоняется независимо от занятости кабинета.
func (s *ConsultationServiceImpl) validateSchedule(dateStr, timeStr string, duration int) (time.Time, string, int, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, "", 0, fmt.Errorf("%w: неверный формат даты, ожидается YYYY-MM-DD", domain.ErrDatosInvalidos)
	}

	parsedTime, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, "", 0, fmt.Errorf("%w: неверный формат времени, ожидается HH:MM", domain.ErrDatosInvalidos)
	}

	if duration == 0 {
		duration = domain.DefaultConsultationDuration
	}
	if duration < 0 {
		return time.Time{}, "", 0, fmt.Errorf("%w: длительность должна быть положительной", domain.ErrDatosInvalidos)
	}

	// Сравниваются календарные даты, а не моменты времени: дата приходит
	// без часового пояса, и "сегодня" определяется локальным днём сервера.
	if dateStr < s.now().Format("2006-01-02") {
		return time.Time{}, "", 0, domain.ErrFechaPasada
	}

	return date, parsedTime.Format("15:04"), duration, nil
}

func (s *ConsultationServiceImpl) AddAttachment(ctx context.Context, consultationID int64, filename, contentType string, data []byte) (int64, error) {
	if s.fileStorage == nil {
		return 0, errors.New("файловое хранилище не настроено")
	}

	consultation, err := s.repo.GetByID(ctx, consultationID)
	if err != nil {
		return 0, fmt.Errorf("ошибка получения консультации: %w", err)
	}
	if consultation == nil {
		return 0, errors.New("консультация не найдена")
	}

	objectKey := fmt.Sprintf("consultations/%d/%s%s", consultationID, uuid.New().String(), filepath.Ext(filename))

	if err := s.fileStorage.Upload(ctx, objectKey, data, contentType); err != nil {
		s.logger.Error("ошибка загрузки вложения", zap.String("objectKey", objectKey), zap.Error(err))
		return 0, fmt.Errorf("ошибка загрузки вложения: %w", err)
	}

	id, err := s.repo.AddAttachment(ctx, domain.ConsultationAttachment{
		ConsultationID: consultationID,
		FileName:       filename,
		ObjectKey:      objectKey,
		ContentType:    contentType,
		Size:           int64(len(data)),
	})
	if err != nil {
		s.logger.Error("ошибка сохранения вложения", zap.Error(err))
		return 0, fmt.Errorf("ошибка сохранения вложения: %w", err)
	}

	return id, nil
}

func (s *ConsultationServiceImpl) GetAttachment(ctx context.Context, id int64) (*domain.ConsultationAttachment, []byte, error) {
	if s.fileStorage == nil {
		return nil, nil, errors.New("файловое хранилище не настроено")
	}

	attachment, err := s.repo.GetAttachment(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка получения вложения: %w", err)
	}
	if attachment == nil {
		return nil, nil, errors.New("вложение не найдено")
	}

	data, err := s.fileStorage.Download(ctx, attachment.ObjectKey)
	if err != nil {
		s.logger.Error("ошибка скачивания вложения", zap.String("objectKey", attachment.ObjectKey), zap.Error(err))
		return nil, nil, fmt.Errorf("ошибка скачивания вложения: %w", err)
	}

	return attachment, data, nil
}

func (s *ConsultationServiceImpl) ListAttachments(ctx context.Context, consultationID int64) ([]domain.ConsultationAttachment, error) {
	attachments, err := s.repo.ListAttachments(ctx, consultationID)
	if err != nil {
		s.logger.Error("ошибка получения списка вложений", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения списка вложений: %w", err)
	}
	return attachments, nil
}

func (s *ConsultationServiceImpl) DeleteAttachment(ctx context.Context, id int64) error {
	attachment, err := s.repo.GetAttachment(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка получения вложения: %w", err)
	}
	if attachment == nil {
		return errors.New("вложение не найдено")
	}

	if s.fileStorage != nil {
		if err := s.fileStorage.Delete(ctx, attachment.ObjectKey); err != nil {
			s.logger.Warn("ошибка удаления объекта из хранилища",
				zap.String("objectKey", attachment.ObjectKey),
				zap.Error(err))
		}
	}

	if err := s.repo.DeleteAttachment(ctx, id); err != nil {
		s.logger.Error("ошибка удаления вложения", zap.Error(err))
		return fmt.Errorf("ошибка удаления вложения: %w", err)
	}

	return nil
}
