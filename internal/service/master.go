package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/internal/repository"
	"salon/internal/storage"
)

type MasterServiceImpl struct {
	repo        repository.MasterRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewMasterService(repo repository.MasterRepository, fileStorage storage.FileStorage, logger *zap.Logger) *MasterServiceImpl {
	return &MasterServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *MasterServiceImpl) Create(ctx context.Context, dto domain.CreateMasterDTO) (int64, error) {
	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания мастера", zap.Error(err))
		return 0, errors.New("ошибка при создании мастера")
	}

	return id, nil
}

func (s *MasterServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	master, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения мастера", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("мастер не найден")
	}
	return master, nil
}

func (s *MasterServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Master, error) {
	master, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("профиль мастера не найден")
	}
	return master, nil
}

func (s *MasterServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateMasterDTO) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("мастер для обновления не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("мастер не найден")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления мастера", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении мастера")
	}

	return nil
}

func (s *MasterServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления мастера", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении мастера")
	}
	return nil
}

func (s *MasterServiceImpl) List(ctx context.Context, filter domain.MasterFilter) ([]domain.Master, error) {
	masters, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка мастеров", zap.Error(err))
		return nil, errors.New("ошибка при получении списка мастеров")
	}
	return masters, nil
}

func (s *MasterServiceImpl) UploadPhoto(ctx context.Context, masterID int64, photo []byte, filename string) error {
	if s.fileStorage == nil {
		return errors.New("файловое хранилище не настроено")
	}

	master, err := s.repo.GetByID(ctx, masterID)
	if err != nil {
		return errors.New("мастер не найден")
	}

	if master.PhotoURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, master.PhotoURL); err != nil {
			s.logger.Warn("не удалось удалить старое фото", zap.String("url", master.PhotoURL), zap.Error(err))
		}
	}

	url, err := s.fileStorage.UploadFile(ctx, photo, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки фото", zap.Int64("masterID", masterID), zap.Error(err))
		return errors.New("ошибка при загрузке фото")
	}

	err = s.repo.UpdatePhoto(ctx, masterID, url)
	if err != nil {
		s.logger.Error("ошибка сохранения URL фото", zap.Int64("masterID", masterID), zap.Error(err))
		return errors.New("ошибка при сохранении фото")
	}

	return nil
}

func (s *MasterServiceImpl) DeletePhoto(ctx context.Context, masterID int64) error {
	if s.fileStorage == nil {
		return errors.New("файловое хранилище не настроено")
	}

	master, err := s.repo.GetByID(ctx, masterID)
	if err != nil {
		return errors.New("мастер не найден")
	}

	if master.PhotoURL == "" {
		return nil
	}

	if err := s.fileStorage.DeleteFile(ctx, master.PhotoURL); err != nil {
		s.logger.Warn("не удалось удалить фото из хранилища", zap.String("url", master.PhotoURL), zap.Error(err))
	}

	err = s.repo.UpdatePhoto(ctx, masterID, "")
	if err != nil {
		s.logger.Error("ошибка очистки URL фото", zap.Int64("masterID", masterID), zap.Error(err))
		return errors.New("ошибка при удалении фото")
	}

	return nil
}
