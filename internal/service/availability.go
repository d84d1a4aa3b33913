package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
)

const DefaultSlotStep = 30

type AvailabilityServiceImpl struct {
	repo             repository.AvailabilityRepository
	consultationRepo repository.ConsultationRepository
	professionalRepo repository.ProfessionalRepository
	logger           *zap.Logger
}

func NewAvailabilityService(
	repo repository.AvailabilityRepository,
	consultationRepo repository.ConsultationRepository,
	professionalRepo repository.ProfessionalRepository,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		repo:             repo,
		consultationRepo: consultationRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

type interval struct {
	start time.Time
	end   time.Time
}

// overlaps - полуоткрытый тест пересечения [a,b) и [c,d): a < d && c < b.
// Совпадение границ (встык) пересечением не считается.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// dayWindow - рабочее окно дня плюс заблокированные участки внутри него.
type dayWindow struct {
	start   time.Time
	end     time.Time
	blocked []interval
}

// weekdayIndex переводит time.Weekday (воскресенье=0) в нумерацию
// шаблона: 0=понедельник .. 6=воскресенье.
func weekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// combine собирает дату и время "HH:MM" в один момент локального времени.
func combine(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// resolveDayWindow определяет рабочее окно профессионала на дату.
// nil без ошибки означает закрытый день: шаблон отсутствует, день закрыт
// явно, закрыт исключением или у открытого дня не заполнены границы.
// Исключение с корректным интервалом не заменяет окно дня, а добавляет
// заблокированный участок внутри него.
func (s *AvailabilityServiceImpl) resolveDayWindow(ctx context.Context, professionalID int64, date time.Time) (*dayWindow, error) {
	weekly, err := s.repo.GetWeekly(ctx, professionalID, weekdayIndex(date))
	if err != nil {
		return nil, fmt.Errorf("ошибка получения недельного шаблона: %w", err)
	}

	if weekly == nil || weekly.IsClosed || weekly.StartTime == nil || weekly.EndTime == nil {
		return nil, nil
	}

	start, err := combine(date, *weekly.StartTime)
	if err != nil {
		s.logger.Warn("некорректное время начала в недельном шаблоне",
			zap.Int64("professionalID", professionalID),
			zap.String("start_time", *weekly.StartTime))
		return nil, nil
	}

	end, err := combine(date, *weekly.EndTime)
	if err != nil {
		s.logger.Warn("некорректное время окончания в недельном шаблоне",
			zap.Int64("professionalID", professionalID),
			zap.String("end_time", *weekly.EndTime))
		return nil, nil
	}

	window := &dayWindow{start: start, end: end}

	exception, err := s.repo.GetException(ctx, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения исключения доступности: %w", err)
	}

	if exception != nil {
		if exception.IsClosed {
			return nil, nil
		}
		if exception.StartTime != nil && exception.EndTime != nil {
			blockedStart, errStart := combine(date, *exception.StartTime)
			blockedEnd, errEnd := combine(date, *exception.EndTime)
			if errStart == nil && errEnd == nil && blockedStart.Before(blockedEnd) {
				window.blocked = append(window.blocked, interval{start: blockedStart, end: blockedEnd})
			}
		}
	}

	return window, nil
}

// GenerateSlots возвращает доступные времена начала консультации в формате
// "HH:MM". Курсор идет по фиксированной сетке шага независимо от требуемой
// длительности. Закрытый день дает пустой список, а не ошибку.
func (s *AvailabilityServiceImpl) GenerateSlots(ctx context.Context, professionalID int64, dateStr string, durationMinutes, stepMinutes int) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: длительность должна быть положительной", domain.ErrDatosInvalidos)
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: шаг сетки должен быть положительным", domain.ErrDatosInvalidos)
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: неверный формат даты, ожидается YYYY-MM-DD", domain.ErrDatosInvalidos)
	}

	professional, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения профессионала: %w", err)
	}
	if professional == nil {
		return nil, errors.New("профессионал не найден")
	}

	window, err := s.resolveDayWindow(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return []string{}, nil
	}

	occupied := make([]interval, 0, len(window.blocked))
	occupied = append(occupied, window.blocked...)

	consultations, err := s.consultationRepo.ListForDay(ctx, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения консультаций за день: %w", err)
	}

	for _, c := range consultations {
		start, err := combine(date, c.Time)
		if err != nil {
			s.logger.Warn("некорректное время консультации",
				zap.Int64("consultationID", c.ID),
				zap.String("time", c.Time))
			continue
		}
		duration := c.Duration
		if duration <= 0 {
			duration = domain.DefaultConsultationDuration
		}
		occupied = append(occupied, interval{
			start: start,
			end:   start.Add(time.Duration(duration) * time.Minute),
		})
	}

	block := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	slots := []string{}
	for cursor := window.start; !cursor.Add(block).After(window.end); cursor = cursor.Add(step) {
		candidateEnd := cursor.Add(block)

		conflict := false
		for _, o := range occupied {
			if overlaps(cursor, candidateEnd, o.start, o.end) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, cursor.Format("15:04"))
		}
	}

	return slots, nil
}

func (s *AvailabilityServiceImpl) SetWeekly(ctx context.Context, professionalID int64, dtos []domain.SetWeeklyAvailabilityDTO) error {
	professional, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		return fmt.Errorf("ошибка получения профессионала: %w", err)
	}
	if professional == nil {
		return errors.New("профессионал не найден")
	}

	for _, dto := range dtos {
		if dto.Weekday < 0 || dto.Weekday > 6 {
			return fmt.Errorf("%w: день недели должен быть от 0 до 6", domain.ErrDatosInvalidos)
		}
		if !dto.IsClosed {
			if dto.StartTime == nil || dto.EndTime == nil {
				return fmt.Errorf("%w: для открытого дня нужны оба времени", domain.ErrDatosInvalidos)
			}
			if err := validateTimeRange(*dto.StartTime, *dto.EndTime); err != nil {
				return err
			}
		}
	}

	for _, dto := range dtos {
		if dto.IsClosed {
			dto.StartTime = nil
			dto.EndTime = nil
		}
		if _, err := s.repo.UpsertWeekly(ctx, professionalID, dto); err != nil {
			s.logger.Error("ошибка сохранения недельного шаблона",
				zap.Int64("professionalID", professionalID),
				zap.Int("weekday", dto.Weekday),
				zap.Error(err))
			return fmt.Errorf("ошибка сохранения недельного шаблона: %w", err)
		}
	}

	return nil
}

func (s *AvailabilityServiceImpl) GetWeekly(ctx context.Context, professionalID int64) ([]domain.WeeklyAvailability, error) {
	weekly, err := s.repo.ListWeekly(ctx, professionalID)
	if err != nil {
		s.logger.Error("ошибка получения недельного шаблона", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения недельного шаблона: %w", err)
	}
	return weekly, nil
}

func (s *AvailabilityServiceImpl) SetException(ctx context.Context, professionalID int64, dto domain.SetExceptionDTO) (int64, error) {
	professional, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		return 0, fmt.Errorf("ошибка получения профессионала: %w", err)
	}
	if professional == nil {
		return 0, errors.New("профессионал не найден")
	}

	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: неверный формат даты, ожидается YYYY-MM-DD", domain.ErrDatosInvalidos)
	}

	if !dto.IsClosed && dto.StartTime != nil && dto.EndTime != nil {
		if err := validateTimeRange(*dto.StartTime, *dto.EndTime); err != nil {
			return 0, err
		}
	}

	id, err := s.repo.UpsertException(ctx, professionalID, date, dto)
	if err != nil {
		s.logger.Error("ошибка сохранения исключения доступности", zap.Error(err))
		return 0, fmt.Errorf("ошибка сохранения исключения доступности: %w", err)
	}

	return id, nil
}

func (s *AvailabilityServiceImpl) ListExceptions(ctx context.Context, filter domain.ExceptionFilter) ([]domain.AvailabilityException, error) {
	exceptions, err := s.repo.ListExceptions(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка исключений", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения списка исключений: %w", err)
	}
	return exceptions, nil
}

func (s *AvailabilityServiceImpl) DeleteException(ctx context.Context, id int64) error {
	if err := s.repo.DeleteException(ctx, id); err != nil {
		s.logger.Error("ошибка удаления исключения доступности", zap.Error(err))
		return fmt.Errorf("ошибка удаления исключения доступности: %w", err)
	}
	return nil
}

func validateTimeRange(startStr, endStr string) error {
	start, err := time.Parse("15:04", startStr)
	if err != nil {
		return fmt.Errorf("%w: неверный формат времени начала, ожидается HH:MM", domain.ErrDatosInvalidos)
	}
	end, err := time.Parse("15:04", endStr)
	if err != nil {
		return fmt.Errorf("%w: неверный формат времени окончания, ожидается HH:MM", domain.ErrDatosInvalidos)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: время начала должно быть раньше времени окончания", domain.ErrDatosInvalidos)
	}
	return nil
}
