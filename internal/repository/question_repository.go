package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type MCQRepository struct {
	DB *gorm.DB
}

func NewMCQRepository(db *gorm.DB) *MCQRepository {
	return &MCQRepository{DB: db}
}

func (r *MCQRepository) Create(question *model.MultipleChoiceQuestion) error {
	return r.DB.Create(question).Error
}

func (r *MCQRepository) CreateBatch(questions []model.MultipleChoiceQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.Create(&questions).Error
}

func (r *MCQRepository) FindByID(id uint) (*model.MultipleChoiceQuestion, error) {
	var question model.MultipleChoiceQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *MCQRepository) FindByExerciseID(exerciseID uint) ([]model.MultipleChoiceQuestion, error) {
	var questions []model.MultipleChoiceQuestion
	err := r.DB.Where("exercise_id = ?", exerciseID).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *MCQRepository) Update(question *model.MultipleChoiceQuestion) error {
	return r.DB.Save(question).Error
}

func (r *MCQRepository) Delete(id uint) error {
	return r.DB.Delete(&model.MultipleChoiceQuestion{}, id).Error
}

type SentenceRewritingRepository struct {
	DB *gorm.DB
}

func NewSentenceRewritingRepository(db *gorm.DB) *SentenceRewritingRepository {
	return &SentenceRewritingRepository{DB: db}
}

func (r *SentenceRewritingRepository) Create(question *model.SentenceRewritingQuestion) error {
	return r.DB.Create(question).Error
}

func (r *SentenceRewritingRepository) FindByID(id uint) (*model.SentenceRewritingQuestion, error) {
	var question model.SentenceRewritingQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *SentenceRewritingRepository) FindByExerciseID(exerciseID uint) ([]model.SentenceRewritingQuestion, error) {
	var questions []model.SentenceRewritingQuestion
	err := r.DB.Where("exercise_id = ?", exerciseID).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *SentenceRewritingRepository) Update(question *model.SentenceRewritingQuestion) error {
	return r.DB.Save(question).Error
}

func (r *SentenceRewritingRepository) Delete(id uint) error {
	return r.DB.Delete(&model.SentenceRewritingQuestion{}, id).Error
}
