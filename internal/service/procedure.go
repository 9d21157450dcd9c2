package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
)

type ProcedureServiceImpl struct {
	repo   repository.ProcedureRepository
	logger *zap.Logger
}

func NewProcedureService(repo repository.ProcedureRepository, logger *zap.Logger) *ProcedureServiceImpl {
	return &ProcedureServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProcedureServiceImpl) Create(ctx context.Context, dto domain.CreateProcedureDTO) (int64, error) {
	if dto.DurationMin <= 0 {
		return 0, errors.New("длительность процедуры должна быть положительной")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания процедуры", zap.Error(err))
		return 0, errors.New("ошибка при создании процедуры")
	}

	return id, nil
}

func (s *ProcedureServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	procedure, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения процедуры", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("процедура не найдена")
	}
	return procedure, nil
}

func (s *ProcedureServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateProcedureDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("процедура для обновления не найдена", zap.Int64("id", id), zap.Error(err))
		return errors.New("процедура не найдена")
	}

	if dto.DurationMin != nil && *dto.DurationMin <= 0 {
		return errors.New("длительность процедуры должна быть положительной")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления процедуры", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении процедуры")
	}

	return nil
}

func (s *ProcedureServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления процедуры", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении процедуры")
	}
	return nil
}

func (s *ProcedureServiceImpl) List(ctx context.Context, filter domain.ProcedureFilter) ([]domain.Procedure, int, error) {
	procedures, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка процедур", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка процедур")
	}

	count, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка подсчета процедур", zap.Error(err))
		return procedures, 0, nil
	}

	return procedures, count, nil
}
