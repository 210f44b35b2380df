package service

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

// TheoryService 课时的词汇与语法内容
type TheoryService struct {
	vocabRepo   *repository.VocabularyRepository
	grammarRepo *repository.GrammarRepository
}

func NewTheoryService(vocabRepo *repository.VocabularyRepository, grammarRepo *repository.GrammarRepository) *TheoryService {
	return &TheoryService{vocabRepo: vocabRepo, grammarRepo: grammarRepo}
}

func (s *TheoryService) CreateVocabulary(vocab *model.VocabularyTheory) error {
	return s.vocabRepo.Create(vocab)
}

func (s *TheoryService) CreateVocabularyBatch(vocabs []model.VocabularyTheory) error {
	return s.vocabRepo.CreateBatch(vocabs)
}

func (s *TheoryService) GetVocabularyByID(id uint) (*model.VocabularyTheory, error) {
	vocab, err := s.vocabRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return vocab, nil
}

func (s *TheoryService) GetVocabularyByLesson(lessonID uint) ([]model.VocabularyTheory, error) {
	return s.vocabRepo.FindByLessonID(lessonID)
}

func (s *TheoryService) UpdateVocabulary(vocab *model.VocabularyTheory) error {
	return s.vocabRepo.Update(vocab)
}

func (s *TheoryService) DeleteVocabulary(id uint) error {
	return s.vocabRepo.Delete(id)
}

func (s *TheoryService) CreateGrammar(grammar *model.GrammarTheory) error {
	return s.grammarRepo.Create(grammar)
}

func (s *TheoryService) GetGrammarByID(id uint) (*model.GrammarTheory, error) {
	grammar, err := s.grammarRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return grammar, nil
}

func (s *TheoryService) GetGrammarByLesson(lessonID uint) ([]model.GrammarTheory, error) {
	return s.grammarRepo.FindByLessonID(lessonID)
}

func (s *TheoryService) UpdateGrammar(grammar *model.GrammarTheory) error {
	return s.grammarRepo.Update(grammar)
}

func (s *TheoryService) DeleteGrammar(id uint) error {
	return s.grammarRepo.Delete(id)
}
