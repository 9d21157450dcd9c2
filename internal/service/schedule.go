package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salon/internal/availability"
	"salon/internal/domain"
	"salon/internal/repository"
)

type ScheduleServiceImpl struct {
	masterRepo    repository.MasterRepository
	procedureRepo repository.ProcedureRepository
	apptRepo      repository.AppointmentRepository
	logger        *zap.Logger
}

func NewScheduleService(
	masterRepo repository.MasterRepository,
	procedureRepo repository.ProcedureRepository,
	apptRepo repository.AppointmentRepository,
	logger *zap.Logger,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		masterRepo:    masterRepo,
		procedureRepo: procedureRepo,
		apptRepo:      apptRepo,
		logger:        logger,
	}
}

func (s *ScheduleServiceImpl) GetWorkingHours(ctx context.Context, masterID int64) (domain.WorkingHours, error) {
	_, err := s.masterRepo.GetByID(ctx, masterID)
	if err != nil {
		s.logger.Error("мастер не найден", zap.Int64("masterID", masterID), zap.Error(err))
		return nil, errors.New("мастер не найден")
	}

	hours, err := s.masterRepo.GetWorkingHours(ctx, masterID)
	if err != nil {
		s.logger.Error("ошибка получения графика", zap.Int64("masterID", masterID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения графика: %w", err)
	}

	return hours, nil
}

func (s *ScheduleServiceImpl) SetWorkingHours(ctx context.Context, masterID int64, dto domain.SetWorkingHoursDTO) error {
	_, err := s.masterRepo.GetByID(ctx, masterID)
	if err != nil {
		s.logger.Error("мастер не найден", zap.Int64("masterID", masterID), zap.Error(err))
		return errors.New("мастер не найден")
	}

	hours := make(domain.WorkingHours, len(dto.Days))
	for _, day := range dto.Days {
		start, err := availability.ParseMinutes(day.Start)
		if err != nil {
			return fmt.Errorf("день %d: %w", day.Weekday, err)
		}
		end, err := availability.ParseMinutes(day.End)
		if err != nil {
			return fmt.Errorf("день %d: %w", day.Weekday, err)
		}
		if start >= end {
			return fmt.Errorf("день %d: начало рабочего дня должно быть раньше конца", day.Weekday)
		}
		if _, ok := hours[day.Weekday]; ok {
			return fmt.Errorf("день %d указан дважды", day.Weekday)
		}
		hours[day.Weekday] = domain.DayWindow{Start: start, End: end}
	}

	err = s.masterRepo.SetWorkingHours(ctx, masterID, hours)
	if err != nil {
		s.logger.Error("ошибка сохранения графика", zap.Int64("masterID", masterID), zap.Error(err))
		return fmt.Errorf("ошибка сохранения графика: %w", err)
	}

	return nil
}

// GetSlots считает сетку слотов мастера на дату под длительность процедуры.
// День без настроенного окна — выходной, результат пустой. Расчёт чистый и
// без кеширования: каждый запрос читает актуальные график и занятость.
func (s *ScheduleServiceImpl) GetSlots(ctx context.Context, masterID, procedureID int64, date time.Time) ([]availability.Slot, error) {
	_, err := s.masterRepo.GetByID(ctx, masterID)
	if err != nil {
		s.logger.Error("мастер не найден", zap.Int64("masterID", masterID), zap.Error(err))
		return nil, errors.New("мастер не найден")
	}

	procedure, err := s.procedureRepo.GetByID(ctx, procedureID)
	if err != nil {
		s.logger.Error("процедура не найдена", zap.Int64("procedureID", procedureID), zap.Error(err))
		return nil, errors.New("процедура не найдена")
	}

	hours, err := s.masterRepo.GetWorkingHours(ctx, masterID)
	if err != nil {
		s.logger.Error("ошибка получения графика", zap.Int64("masterID", masterID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения графика: %w", err)
	}

	dayWindow := hours.WindowFor(date.Weekday())
	var window *availability.Window
	if dayWindow != nil {
		window = &availability.Window{Start: dayWindow.Start, End: dayWindow.End}
	}

	busyIntervals, err := s.apptRepo.GetBusyIntervals(ctx, masterID, date)
	if err != nil {
		s.logger.Error("ошибка получения занятых интервалов", zap.Int64("masterID", masterID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения занятых интервалов: %w", err)
	}

	busy := make([]availability.Busy, 0, len(busyIntervals))
	for _, interval := range busyIntervals {
		busy = append(busy, availability.Busy{
			StartMin:    interval.StartMin,
			DurationMin: interval.DurationMin,
		})
	}

	return availability.Slots(window, procedure.DurationMin, availability.Granularity, busy), nil
}
