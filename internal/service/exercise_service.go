package service

import (
	"errors"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

type ExerciseService struct {
	exerciseRepo *repository.ExerciseRepository
	mcqRepo      *repository.MCQRepository
	srqRepo      *repository.SentenceRewritingRepository
	resultRepo   *repository.ExerciseResultRepository
}

func NewExerciseService(
	exerciseRepo *repository.ExerciseRepository,
	mcqRepo *repository.MCQRepository,
	srqRepo *repository.SentenceRewritingRepository,
	resultRepo *repository.ExerciseResultRepository,
) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
		mcqRepo:      mcqRepo,
		srqRepo:      srqRepo,
		resultRepo:   resultRepo,
	}
}

func (s *ExerciseService) CreateExercise(exercise *model.Exercise) error {
	return s.exerciseRepo.Create(exercise)
}

func (s *ExerciseService) GetExerciseByID(id uint) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *ExerciseService) GetExercisesByLesson(lessonID uint) ([]model.Exercise, error) {
	return s.exerciseRepo.FindByLessonID(lessonID)
}

func (s *ExerciseService) GetExercisesByLessonAndType(lessonID uint, exerciseType string) ([]model.Exercise, error) {
	return s.exerciseRepo.FindByLessonIDAndType(lessonID, exerciseType)
}

func (s *ExerciseService) UpdateExercise(exercise *model.Exercise) error {
	return s.exerciseRepo.Update(exercise)
}

func (s *ExerciseService) DeleteExercise(id uint) error {
	return s.exerciseRepo.Delete(id)
}

// SubmitResult 记录一次练习成绩，不限次数，历史全部保留
func (s *ExerciseService) SubmitResult(userID, exerciseID uint, score int) (*model.UserExerciseResult, error) {
	if _, err := s.GetExerciseByID(exerciseID); err != nil {
		return nil, err
	}

	result := &model.UserExerciseResult{
		UserID:       userID,
		ExerciseID:   exerciseID,
		Score:        score,
		DateComplete: time.Now(),
	}
	if err := s.resultRepo.Create(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ExerciseService) GetResultsByUser(userID uint) ([]model.UserExerciseResult, error) {
	return s.resultRepo.FindByUser(userID)
}

func (s *ExerciseService) GetResultsByUserAndExercise(userID, exerciseID uint) ([]model.UserExerciseResult, error) {
	return s.resultRepo.FindByUserAndExercise(userID, exerciseID)
}

// GetBestScore 用户在某练习的历史最高分，无记录返回0
func (s *ExerciseService) GetBestScore(userID, exerciseID uint) (int, error) {
	score, err := s.resultRepo.FindBestScore(userID, exerciseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return score, nil
}
