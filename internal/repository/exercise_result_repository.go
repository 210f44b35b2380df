package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type ExerciseResultRepository struct {
	DB *gorm.DB
}

func NewExerciseResultRepository(db *gorm.DB) *ExerciseResultRepository {
	return &ExerciseResultRepository{DB: db}
}

func (r *ExerciseResultRepository) Create(result *model.UserExerciseResult) error {
	return r.DB.Create(result).Error
}

func (r *ExerciseResultRepository) FindByID(id uint) (*model.UserExerciseResult, error) {
	var result model.UserExerciseResult
	err := r.DB.First(&result, id).Error
	return &result, err
}

func (r *ExerciseResultRepository) FindByUser(userID uint) ([]model.UserExerciseResult, error) {
	var results []model.UserExerciseResult
	err := r.DB.Where("user_id = ?", userID).Order("date_complete DESC").Find(&results).Error
	return results, err
}

func (r *ExerciseResultRepository) FindByUserAndExercise(userID, exerciseID uint) ([]model.UserExerciseResult, error) {
	var results []model.UserExerciseResult
	err := r.DB.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Order("date_complete DESC").Find(&results).Error
	return results, err
}

// FindBestScore 返回用户在某练习的历史最高分，无记录时返回gorm.ErrRecordNotFound
func (r *ExerciseResultRepository) FindBestScore(userID, exerciseID uint) (int, error) {
	var result model.UserExerciseResult
	err := r.DB.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Order("score DESC").First(&result).Error
	return result.Score, err
}

func (r *ExerciseResultRepository) Delete(id uint) error {
	return r.DB.Delete(&model.UserExerciseResult{}, id).Error
}
