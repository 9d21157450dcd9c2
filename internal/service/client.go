package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
	"salon/pkg/validator"
)

type ClientServiceImpl struct {
	repo   repository.ClientRepository
	logger *zap.Logger
}

func NewClientService(repo repository.ClientRepository, logger *zap.Logger) *ClientServiceImpl {
	return &ClientServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ClientServiceImpl) Create(ctx context.Context, dto domain.CreateClientDTO) (int64, error) {
	if !validator.ValidatePhone(dto.Phone) {
		return 0, errors.New("неверный формат телефона")
	}
	dto.Phone = validator.FormatPhone(dto.Phone)
	dto.FirstName = validator.FormatName(dto.FirstName)
	dto.LastName = validator.FormatName(dto.LastName)

	existing, err := s.repo.GetByPhone(ctx, dto.Phone)
	if err == nil && existing != nil {
		return 0, errors.New("клиент с таким телефоном уже существует")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания клиента", zap.Error(err))
		return 0, errors.New("ошибка при создании клиента")
	}

	return id, nil
}

func (s *ClientServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения клиента", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("клиент не найден")
	}
	return client, nil
}

func (s *ClientServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateClientDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("клиент для обновления не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("клиент не найден")
	}

	if dto.Phone != nil {
		if !validator.ValidatePhone(*dto.Phone) {
			return errors.New("неверный формат телефона")
		}
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления клиента", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении клиента")
	}

	return nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления клиента", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении клиента")
	}
	return nil
}

func (s *ClientServiceImpl) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error) {
	clients, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка клиентов", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка клиентов")
	}

	count, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка подсчета клиентов", zap.Error(err))
		return clients, 0, nil
	}

	return clients, count, nil
}
