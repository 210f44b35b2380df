package service

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

// LevelXPService 等级阈值表的管理接口。运行时只读，写入仅限管理端。
// 阈值单调性不做跨行校验。
type LevelXPService struct {
	levelXPRepo *repository.LevelXPRepository
}

func NewLevelXPService(levelXPRepo *repository.LevelXPRepository) *LevelXPService {
	return &LevelXPService{levelXPRepo: levelXPRepo}
}

func (s *LevelXPService) GetAll() ([]model.LevelXP, error) {
	return s.levelXPRepo.FindAll()
}

func (s *LevelXPService) GetByLevelNumber(levelNumber int) (*model.LevelXP, error) {
	level, err := s.levelXPRepo.FindByLevelNumber(levelNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLevelXPNotFound
		}
		return nil, err
	}
	return level, nil
}

func (s *LevelXPService) Upsert(level *model.LevelXP) error {
	return s.levelXPRepo.Upsert(level)
}

func (s *LevelXPService) Delete(levelNumber int) error {
	return s.levelXPRepo.Delete(levelNumber)
}
