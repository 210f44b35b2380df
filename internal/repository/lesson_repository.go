package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

// FindByLevelID 按ID升序返回级别下的全部课时，该顺序即解锁顺序
func (r *LessonRepository) FindByLevelID(levelID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("level_id = ?", levelID).Order("id ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByLevelIDPaged(levelID uint, page, size int) ([]model.Lesson, int64, error) {
	var lessons []model.Lesson
	var total int64

	query := r.DB.Model(&model.Lesson{}).Where("level_id = ?", levelID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id ASC").Offset(page * size).Limit(size).Find(&lessons).Error
	return lessons, total, err
}

// FindNextInLevel 返回同级别内ID大于lessonID的下一个课时，不存在时返回gorm.ErrRecordNotFound
func (r *LessonRepository) FindNextInLevel(levelID, lessonID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("level_id = ? AND id > ?", levelID, lessonID).
		Order("id ASC").
		First(&lesson).Error
	return &lesson, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}
