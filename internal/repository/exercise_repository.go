package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

func (r *ExerciseRepository) Create(exercise *model.Exercise) error {
	return r.DB.Create(exercise).Error
}

func (r *ExerciseRepository) FindByID(id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.First(&exercise, id).Error
	return &exercise, err
}

func (r *ExerciseRepository) FindByLessonID(lessonID uint) ([]model.Exercise, error) {
	var exercises []model.Exercise
	err := r.DB.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) FindByLessonIDAndType(lessonID uint, exerciseType string) ([]model.Exercise, error) {
	var exercises []model.Exercise
	err := r.DB.Where("lesson_id = ? AND exercise_type = ?", lessonID, exerciseType).
		Order("id ASC").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) Update(exercise *model.Exercise) error {
	return r.DB.Save(exercise).Error
}

func (r *ExerciseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Exercise{}, id).Error
}
