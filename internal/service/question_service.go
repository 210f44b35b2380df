package service

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

// QuestionService 选择题与句型改写题的管理
type QuestionService struct {
	mcqRepo *repository.MCQRepository
	srqRepo *repository.SentenceRewritingRepository
}

func NewQuestionService(mcqRepo *repository.MCQRepository, srqRepo *repository.SentenceRewritingRepository) *QuestionService {
	return &QuestionService{mcqRepo: mcqRepo, srqRepo: srqRepo}
}

func (s *QuestionService) CreateMCQ(question *model.MultipleChoiceQuestion) error {
	return s.mcqRepo.Create(question)
}

func (s *QuestionService) CreateMCQBatch(questions []model.MultipleChoiceQuestion) error {
	return s.mcqRepo.CreateBatch(questions)
}

func (s *QuestionService) GetMCQByID(id uint) (*model.MultipleChoiceQuestion, error) {
	question, err := s.mcqRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) GetMCQByExercise(exerciseID uint) ([]model.MultipleChoiceQuestion, error) {
	return s.mcqRepo.FindByExerciseID(exerciseID)
}

func (s *QuestionService) UpdateMCQ(question *model.MultipleChoiceQuestion) error {
	return s.mcqRepo.Update(question)
}

func (s *QuestionService) DeleteMCQ(id uint) error {
	return s.mcqRepo.Delete(id)
}

func (s *QuestionService) CreateSentenceRewriting(question *model.SentenceRewritingQuestion) error {
	return s.srqRepo.Create(question)
}

func (s *QuestionService) GetSentenceRewritingByID(id uint) (*model.SentenceRewritingQuestion, error) {
	question, err := s.srqRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) GetSentenceRewritingByExercise(exerciseID uint) ([]model.SentenceRewritingQuestion, error) {
	return s.srqRepo.FindByExerciseID(exerciseID)
}

func (s *QuestionService) UpdateSentenceRewriting(question *model.SentenceRewritingQuestion) error {
	return s.srqRepo.Update(question)
}

func (s *QuestionService) DeleteSentenceRewriting(id uint) error {
	return s.srqRepo.Delete(id)
}
