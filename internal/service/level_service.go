package service

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

type LevelService struct {
	levelRepo *repository.LevelRepository
}

func NewLevelService(levelRepo *repository.LevelRepository) *LevelService {
	return &LevelService{levelRepo: levelRepo}
}

func (s *LevelService) CreateLevel(level *model.Level) error {
	return s.levelRepo.Create(level)
}

func (s *LevelService) GetLevelByID(id uint) (*model.Level, error) {
	level, err := s.levelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLevelNotFound
		}
		return nil, err
	}
	return level, nil
}

func (s *LevelService) GetAllLevels() ([]model.Level, error) {
	return s.levelRepo.FindAll()
}

func (s *LevelService) UpdateLevel(level *model.Level) error {
	return s.levelRepo.Update(level)
}

func (s *LevelService) DeleteLevel(id uint) error {
	return s.levelRepo.Delete(id)
}
