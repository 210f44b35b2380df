package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(class *model.ClassEntity) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.ClassEntity, error) {
	var class model.ClassEntity
	err := r.DB.First(&class, id).Error
	return &class, err
}

func (r *ClassRepository) FindByOwner(userID uint) ([]model.ClassEntity, error) {
	var classes []model.ClassEntity
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) FindAllPaged(keyword string, page, size int) ([]model.ClassEntity, int64, error) {
	var classes []model.ClassEntity
	var total int64

	query := r.DB.Model(&model.ClassEntity{})
	if keyword != "" {
		query = query.Where("class_name LIKE ?", "%"+keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(page * size).Limit(size).Find(&classes).Error
	return classes, total, err
}

func (r *ClassRepository) Update(class *model.ClassEntity) error {
	return r.DB.Save(class).Error
}

func (r *ClassRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ClassEntity{}, id).Error
}

type ClassUserRepository struct {
	DB *gorm.DB
}

func NewClassUserRepository(db *gorm.DB) *ClassUserRepository {
	return &ClassUserRepository{DB: db}
}

func (r *ClassUserRepository) Create(member *model.ClassUser) error {
	return r.DB.Create(member).Error
}

func (r *ClassUserRepository) FindByClassAndUser(classID, userID uint) (*model.ClassUser, error) {
	var member model.ClassUser
	err := r.DB.Where("class_id = ? AND user_id = ?", classID, userID).First(&member).Error
	return &member, err
}

func (r *ClassUserRepository) FindByClass(classID uint) ([]model.ClassUser, error) {
	var members []model.ClassUser
	err := r.DB.Where("class_id = ?", classID).Order("joined_at ASC").Find(&members).Error
	return members, err
}

func (r *ClassUserRepository) FindByUser(userID uint) ([]model.ClassUser, error) {
	var members []model.ClassUser
	err := r.DB.Where("user_id = ?", userID).Order("joined_at DESC").Find(&members).Error
	return members, err
}

func (r *ClassUserRepository) CountByClass(classID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ClassUser{}).Where("class_id = ?", classID).Count(&count).Error
	return count, err
}

func (r *ClassUserRepository) DeleteByClassAndUser(classID, userID uint) error {
	return r.DB.Where("class_id = ? AND user_id = ?", classID, userID).
		Delete(&model.ClassUser{}).Error
}

type ClassDocumentRepository struct {
	DB *gorm.DB
}

func NewClassDocumentRepository(db *gorm.DB) *ClassDocumentRepository {
	return &ClassDocumentRepository{DB: db}
}

func (r *ClassDocumentRepository) Create(shared *model.ClassDocumentList) error {
	return r.DB.Create(shared).Error
}

func (r *ClassDocumentRepository) FindByClassAndList(classID, listID uint) (*model.ClassDocumentList, error) {
	var shared model.ClassDocumentList
	err := r.DB.Where("class_id = ? AND list_id = ?", classID, listID).First(&shared).Error
	return &shared, err
}

func (r *ClassDocumentRepository) FindByClass(classID uint) ([]model.ClassDocumentList, error) {
	var shared []model.ClassDocumentList
	err := r.DB.Where("class_id = ?", classID).Order("shared_at DESC").Find(&shared).Error
	return shared, err
}

func (r *ClassDocumentRepository) DeleteByClassAndList(classID, listID uint) error {
	return r.DB.Where("class_id = ? AND list_id = ?", classID, listID).
		Delete(&model.ClassDocumentList{}).Error
}
