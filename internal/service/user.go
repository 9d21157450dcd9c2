package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"salon/internal/domain"
	"salon/internal/repository"
	"salon/pkg/validator"
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
	if !validator.ValidateEmail(dto.Email) {
		return 0, errors.New("неверный формат email")
	}
	if !validator.ValidatePhone(dto.Phone) {
		return 0, errors.New("неверный формат телефона")
	}

	existing, err := s.repo.GetByEmail(ctx, dto.Email)
	if err == nil && existing != nil {
		return 0, errors.New("пользователь с таким email уже существует")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ошибка при хешировании пароля", zap.Error(err))
		return 0, errors.New("ошибка при создании пользователя")
	}
	dto.Password = string(hashedPassword)
	dto.Phone = validator.FormatPhone(dto.Phone)

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания пользователя", zap.Error(err))
		return 0, errors.New("ошибка при создании пользователя")
	}

	return id, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения пользователя", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("пользователь не найден")
	}
	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("пользователь не найден")
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
		s.logger.Error("ошибка обновления пользователя", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении пользователя")
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("пользователь не найден")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.OldPassword))
	if err != nil {
		return errors.New("неверный текущий пароль")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ошибка при хешировании пароля", zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	err = s.repo.UpdatePassword(ctx, id, string(hashedPassword))
	if err != nil {
		s.logger.Error("ошибка обновления пароля", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	return nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления пользователя", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении пользователя")
	}
	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения списка пользователей", zap.Error(err))
		return nil, errors.New("ошибка при получении списка пользователей")
	}
	return users, nil
}
