package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"salon/internal/availability"
	"salon/internal/domain"
	"salon/internal/repository"
)

type AppointmentServiceImpl struct {
	repo          repository.AppointmentRepository
	clientRepo    repository.ClientRepository
	masterRepo    repository.MasterRepository
	procedureRepo repository.ProcedureRepository
	logger        *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	clientRepo repository.ClientRepository,
	masterRepo repository.MasterRepository,
	procedureRepo repository.ProcedureRepository,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:          repo,
		clientRepo:    clientRepo,
		masterRepo:    masterRepo,
		procedureRepo: procedureRepo,
		logger:        logger,
	}
}

// Create бронирует слот. Доступность здесь заново не проверяется:
// параллельная бронь между проверкой и вставкой всё равно возможна, поэтому
// единственная точка истины — ограничение непересечения в БД. Конфликт
// приходит из репозитория как domain.ErrSlotTaken и отдаётся наверх как
// есть, чтобы вызывающий мог предложить пересчитать слоты; остальные ошибки
// хранилища схлопываются в общий отказ без автоповтора.
func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error) {
	_, err := s.clientRepo.GetByID(ctx, dto.ClientID)
	if err != nil {
		s.logger.Error("клиент не найден при создании записи", zap.Int64("clientID", dto.ClientID), zap.Error(err))
		return 0, errors.New("клиент не найден")
	}

	_, err = s.masterRepo.GetByID(ctx, dto.MasterID)
	if err != nil {
		s.logger.Error("мастер не найден при создании записи", zap.Int64("masterID", dto.MasterID), zap.Error(err))
		return 0, errors.New("мастер не найден")
	}

	procedure, err := s.procedureRepo.GetByID(ctx, dto.ProcedureID)
	if err != nil {
		s.logger.Error("процедура не найдена при создании записи", zap.Int64("procedureID", dto.ProcedureID), zap.Error(err))
		return 0, errors.New("процедура не найдена")
	}

	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return 0, errors.New("неверный формат даты, ожидается YYYY-MM-DD")
	}

	startMin, err := availability.ParseMinutes(dto.Time)
	if err != nil {
		return 0, errors.New("неверный формат времени, ожидается HH:MM")
	}

	appointment := domain.Appointment{
		MasterID:    dto.MasterID,
		ClientID:    dto.ClientID,
		ProcedureID: dto.ProcedureID,
		Date:        date,
		StartMin:    startMin,
		DurationMin: procedure.DurationMin,
		Comment:     dto.Comment,
	}

	id, err := s.repo.Create(ctx, appointment)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			s.logger.Warn("конфликт брони",
				zap.Int64("masterID", dto.MasterID),
				zap.String("date", dto.Date),
				zap.String("time", dto.Time))
			return 0, domain.ErrSlotTaken
		}
		s.logger.Error("ошибка создания записи", zap.Error(err))
		return 0, errors.New("ошибка при создании записи")
	}

	return id, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("запись не найдена")
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("запись для обновления не найдена", zap.Int64("id", id), zap.Error(err))
		return errors.New("запись не найдена")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			s.logger.Warn("конфликт брони при переносе", zap.Int64("id", id))
			return domain.ErrSlotTaken
		}
		s.logger.Error("ошибка обновления записи", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении записи")
	}

	return nil
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("запись для отмены не найдена", zap.Int64("id", id), zap.Error(err))
		return errors.New("запись не найдена")
	}

	err = s.repo.Cancel(ctx, id)
	if err != nil {
		s.logger.Error("ошибка отмены записи", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при отмене записи")
	}

	return nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка записей", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка записей")
	}

	count, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения количества записей", zap.Error(err))
		return appointments, 0, nil
	}

	return appointments, count, nil
}
