package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) CreateTx(tx *gorm.DB, progress *model.UserProgress) error {
	return tx.Create(progress).Error
}

func (r *ProgressRepository) FindByUserAndLesson(userID, lessonID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUserAndLessonTx(tx *gorm.DB, userID, lessonID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	return &progress, err
}

// FindByUserAndLessons 批量取用户在一组课时上的完成记录，用于推导锁定状态
func (r *ProgressRepository) FindByUserAndLessons(userID uint, lessonIDs []uint) ([]model.UserProgress, error) {
	var records []model.UserProgress
	if len(lessonIDs) == 0 {
		return records, nil
	}
	err := r.DB.Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.UserProgress, error) {
	var records []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Order("lesson_id ASC").Find(&records).Error
	return records, err
}

func (r *ProgressRepository) Save(progress *model.UserProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) SaveTx(tx *gorm.DB, progress *model.UserProgress) error {
	return tx.Save(progress).Error
}
