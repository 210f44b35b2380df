package service

import (
	"errors"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

// ProgressService 课时完成记录的第二条入口。
// 与 LessonService.CompleteLesson 不同：不加经验、不判首次，
// 但会为级别内的下一课预建一条未完成记录。两条路径并存，行为各异。
type ProgressService struct {
	progressRepo *repository.ProgressRepository
	lessonRepo   *repository.LessonRepository
	userRepo     *repository.UserRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, lessonRepo *repository.LessonRepository, userRepo *repository.UserRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		lessonRepo:   lessonRepo,
		userRepo:     userRepo,
	}
}

// CompleteLesson 标记完成并为下一课预建记录。
func (s *ProgressService) CompleteLesson(userID, lessonID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	lesson, err := s.lessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLessonNotFound
		}
		return err
	}

	progress, err := s.progressRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		progress = &model.UserProgress{
			UserID:   userID,
			LessonID: lessonID,
		}
	}

	progress.IsLessonCompleted = true
	progress.LastAccessed = time.Now()
	if err := s.progressRepo.Save(progress); err != nil {
		return err
	}

	// 为同级别的下一课预建未完成记录，已有记录则跳过
	next, err := s.lessonRepo.FindNextInLevel(lesson.LevelID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if _, err := s.progressRepo.FindByUserAndLesson(userID, next.ID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.progressRepo.Create(&model.UserProgress{
			UserID:            userID,
			LessonID:          next.ID,
			IsLessonCompleted: false,
			LastAccessed:      time.Now(),
		})
	}
	return nil
}

func (s *ProgressService) GetProgressByUser(userID uint) ([]model.UserProgress, error) {
	return s.progressRepo.FindByUser(userID)
}

func (s *ProgressService) GetProgress(userID, lessonID uint) (*model.UserProgress, error) {
	progress, err := s.progressRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return progress, nil
}
