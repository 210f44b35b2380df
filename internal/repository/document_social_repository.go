package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) Create(favorite *model.FavoriteDocumentList) error {
	return r.DB.Create(favorite).Error
}

func (r *FavoriteRepository) FindByUserAndList(userID, listID uint) (*model.FavoriteDocumentList, error) {
	var favorite model.FavoriteDocumentList
	err := r.DB.Where("user_id = ? AND list_id = ?", userID, listID).First(&favorite).Error
	return &favorite, err
}

func (r *FavoriteRepository) FindByUser(userID uint) ([]model.FavoriteDocumentList, error) {
	var favorites []model.FavoriteDocumentList
	err := r.DB.Where("user_id = ?", userID).Order("favorite_at DESC").Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepository) CountByList(listID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.FavoriteDocumentList{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}

func (r *FavoriteRepository) DeleteByUserAndList(userID, listID uint) error {
	return r.DB.Where("user_id = ? AND list_id = ?", userID, listID).
		Delete(&model.FavoriteDocumentList{}).Error
}

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(report *model.DocumentReport) error {
	return r.DB.Create(report).Error
}

func (r *ReportRepository) FindAll() ([]model.DocumentReport, error) {
	var reports []model.DocumentReport
	err := r.DB.Order("report_date DESC").Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) FindByList(listID uint) ([]model.DocumentReport, error) {
	var reports []model.DocumentReport
	err := r.DB.Where("list_id = ?", listID).Order("report_date DESC").Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) Delete(id uint) error {
	return r.DB.Delete(&model.DocumentReport{}, id).Error
}
