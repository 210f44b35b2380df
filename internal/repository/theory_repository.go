package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type VocabularyRepository struct {
	DB *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{DB: db}
}

func (r *VocabularyRepository) Create(vocab *model.VocabularyTheory) error {
	return r.DB.Create(vocab).Error
}

func (r *VocabularyRepository) CreateBatch(vocabs []model.VocabularyTheory) error {
	if len(vocabs) == 0 {
		return nil
	}
	return r.DB.Create(&vocabs).Error
}

func (r *VocabularyRepository) FindByID(id uint) (*model.VocabularyTheory, error) {
	var vocab model.VocabularyTheory
	err := r.DB.First(&vocab, id).Error
	return &vocab, err
}

func (r *VocabularyRepository) FindByLessonID(lessonID uint) ([]model.VocabularyTheory, error) {
	var vocabs []model.VocabularyTheory
	err := r.DB.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&vocabs).Error
	return vocabs, err
}

func (r *VocabularyRepository) Update(vocab *model.VocabularyTheory) error {
	return r.DB.Save(vocab).Error
}

func (r *VocabularyRepository) Delete(id uint) error {
	return r.DB.Delete(&model.VocabularyTheory{}, id).Error
}

type GrammarRepository struct {
	DB *gorm.DB
}

func NewGrammarRepository(db *gorm.DB) *GrammarRepository {
	return &GrammarRepository{DB: db}
}

func (r *GrammarRepository) Create(grammar *model.GrammarTheory) error {
	return r.DB.Create(grammar).Error
}

func (r *GrammarRepository) FindByID(id uint) (*model.GrammarTheory, error) {
	var grammar model.GrammarTheory
	err := r.DB.First(&grammar, id).Error
	return &grammar, err
}

func (r *GrammarRepository) FindByLessonID(lessonID uint) ([]model.GrammarTheory, error) {
	var grammars []model.GrammarTheory
	err := r.DB.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&grammars).Error
	return grammars, err
}

func (r *GrammarRepository) Update(grammar *model.GrammarTheory) error {
	return r.DB.Save(grammar).Error
}

func (r *GrammarRepository) Delete(id uint) error {
	return r.DB.Delete(&model.GrammarTheory{}, id).Error
}
