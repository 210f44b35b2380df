package service

import (
	"errors"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"
	"github.com/tctinsama/KtigerStudy/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LessonWithProgress 带解锁状态的课时视图
type LessonWithProgress struct {
	LessonID          uint   `json:"lessonId"`
	LessonName        string `json:"lessonName"`
	LessonDescription string `json:"lessonDescription"`
	Completed         bool   `json:"completed"`
	Locked            bool   `json:"locked"`
}

// CompleteLessonResult 课时完成的返回，首次完成时附带最新台账
type CompleteLessonResult struct {
	Completed   bool          `json:"completed"`
	IsFirstTime bool          `json:"isFirstTime"`
	XPAdded     bool          `json:"xpAdded"`
	XPData      *model.UserXP `json:"xpData,omitempty"`
}

type LessonService struct {
	lessonRepo   *repository.LessonRepository
	progressRepo *repository.ProgressRepository
	xpService    *XPService
}

func NewLessonService(lessonRepo *repository.LessonRepository, progressRepo *repository.ProgressRepository, xpService *XPService) *LessonService {
	return &LessonService{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		xpService:    xpService,
	}
}

func (s *LessonService) CreateLesson(lesson *model.Lesson) error {
	return s.lessonRepo.Create(lesson)
}

func (s *LessonService) GetLessonByID(id uint) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) GetLessonsByLevel(levelID uint) ([]model.Lesson, error) {
	return s.lessonRepo.FindByLevelID(levelID)
}

func (s *LessonService) GetLessonsByLevelPaged(levelID uint, page, size int) ([]model.Lesson, int64, error) {
	return s.lessonRepo.FindByLevelIDPaged(levelID, page, size)
}

func (s *LessonService) UpdateLesson(lesson *model.Lesson) error {
	return s.lessonRepo.Update(lesson)
}

func (s *LessonService) DeleteLesson(id uint) error {
	return s.lessonRepo.Delete(id)
}

// GetLessonsWithProgress 返回级别内课时的完成与锁定状态。
// 第一课永远解锁，之后每课的锁定取决于前一课是否完成。每次调用现算，不做缓存。
func (s *LessonService) GetLessonsWithProgress(levelID, userID uint) ([]LessonWithProgress, error) {
	lessons, err := s.lessonRepo.FindByLevelID(levelID)
	if err != nil {
		return nil, err
	}

	lessonIDs := make([]uint, 0, len(lessons))
	for _, lesson := range lessons {
		lessonIDs = append(lessonIDs, lesson.ID)
	}

	records, err := s.progressRepo.FindByUserAndLessons(userID, lessonIDs)
	if err != nil {
		return nil, err
	}

	completed := make(map[uint]bool, len(records))
	for _, record := range records {
		completed[record.LessonID] = record.IsLessonCompleted
	}

	result := make([]LessonWithProgress, 0, len(lessons))
	for i, lesson := range lessons {
		locked := false
		if i > 0 {
			locked = !completed[lessons[i-1].ID]
		}
		result = append(result, LessonWithProgress{
			LessonID:          lesson.ID,
			LessonName:        lesson.LessonName,
			LessonDescription: lesson.LessonDescription,
			Completed:         completed[lesson.ID],
			Locked:            locked,
		})
	}
	return result, nil
}

// CompleteLesson 标记课时完成。仅在用户首次完成该课时才加经验（分值即经验值）。
// 完成记录先落库，经验随后在自己的事务内结算；完成写入成功后经验步骤失败不做补偿回滚。
func (s *LessonService) CompleteLesson(userID, lessonID uint, score int) (*CompleteLessonResult, error) {
	if _, err := s.lessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	wasFirstTime := false
	progress, err := s.progressRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		wasFirstTime = true
		progress = &model.UserProgress{
			UserID:   userID,
			LessonID: lessonID,
		}
	} else if !progress.IsLessonCompleted {
		wasFirstTime = true
	}

	progress.IsLessonCompleted = true
	progress.LastAccessed = time.Now()
	if err := s.progressRepo.Save(progress); err != nil {
		return nil, err
	}

	result := &CompleteLessonResult{
		Completed:   true,
		IsFirstTime: wasFirstTime,
	}

	if wasFirstTime {
		xp, err := s.xpService.AddXP(userID, score)
		if err != nil {
			logger.Log.Error("课时完成后经验结算失败",
				zap.Uint("userID", userID),
				zap.Uint("lessonID", lessonID),
				zap.Error(err))
			return nil, err
		}
		result.XPAdded = true
		result.XPData = xp
	}

	return result, nil
}
