package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type DocumentListRepository struct {
	DB *gorm.DB
}

func NewDocumentListRepository(db *gorm.DB) *DocumentListRepository {
	return &DocumentListRepository{DB: db}
}

func (r *DocumentListRepository) Create(list *model.DocumentList) error {
	return r.DB.Create(list).Error
}

func (r *DocumentListRepository) FindByID(id uint) (*model.DocumentList, error) {
	var list model.DocumentList
	err := r.DB.First(&list, id).Error
	return &list, err
}

func (r *DocumentListRepository) FindByUserID(userID uint) ([]model.DocumentList, error) {
	var lists []model.DocumentList
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&lists).Error
	return lists, err
}

// FindPublicPaged 分页查询公开单词集，type与keyword均为可选过滤
func (r *DocumentListRepository) FindPublicPaged(listType, keyword string, page, size int) ([]model.DocumentList, int64, error) {
	var lists []model.DocumentList
	var total int64

	query := r.DB.Model(&model.DocumentList{}).Where("is_public = ?", 1)
	if listType != "" {
		query = query.Where("type = ?", listType)
	}
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(page * size).Limit(size).Find(&lists).Error
	return lists, total, err
}

// FindDistinctPublicTypes 公开单词集的去重类型列表
func (r *DocumentListRepository) FindDistinctPublicTypes() ([]string, error) {
	var types []string
	err := r.DB.Model(&model.DocumentList{}).
		Where("is_public = ? AND type <> ''", 1).
		Distinct("type").
		Order("type ASC").
		Pluck("type", &types).Error
	return types, err
}

func (r *DocumentListRepository) Update(list *model.DocumentList) error {
	return r.DB.Save(list).Error
}

func (r *DocumentListRepository) Delete(id uint) error {
	return r.DB.Delete(&model.DocumentList{}, id).Error
}

type DocumentItemRepository struct {
	DB *gorm.DB
}

func NewDocumentItemRepository(db *gorm.DB) *DocumentItemRepository {
	return &DocumentItemRepository{DB: db}
}

func (r *DocumentItemRepository) Create(item *model.DocumentItem) error {
	return r.DB.Create(item).Error
}

func (r *DocumentItemRepository) CreateBatch(items []model.DocumentItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.Create(&items).Error
}

func (r *DocumentItemRepository) FindByID(id uint) (*model.DocumentItem, error) {
	var item model.DocumentItem
	err := r.DB.First(&item, id).Error
	return &item, err
}

func (r *DocumentItemRepository) FindByListID(listID uint) ([]model.DocumentItem, error) {
	var items []model.DocumentItem
	err := r.DB.Where("list_id = ?", listID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *DocumentItemRepository) CountByListID(listID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.DocumentItem{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}

func (r *DocumentItemRepository) Update(item *model.DocumentItem) error {
	return r.DB.Save(item).Error
}

func (r *DocumentItemRepository) Delete(id uint) error {
	return r.DB.Delete(&model.DocumentItem{}, id).Error
}

func (r *DocumentItemRepository) DeleteByListID(listID uint) error {
	return r.DB.Where("list_id = ?", listID).Delete(&model.DocumentItem{}).Error
}
