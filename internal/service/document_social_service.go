package service

import (
	"errors"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

// DocumentSocialService 单词集的收藏与举报
type DocumentSocialService struct {
	favoriteRepo *repository.FavoriteRepository
	reportRepo   *repository.ReportRepository
	listRepo     *repository.DocumentListRepository
}

func NewDocumentSocialService(
	favoriteRepo *repository.FavoriteRepository,
	reportRepo *repository.ReportRepository,
	listRepo *repository.DocumentListRepository,
) *DocumentSocialService {
	return &DocumentSocialService{
		favoriteRepo: favoriteRepo,
		reportRepo:   reportRepo,
		listRepo:     listRepo,
	}
}

// AddFavorite 收藏单词集，重复收藏静默幂等
func (s *DocumentSocialService) AddFavorite(userID, listID uint) error {
	if _, err := s.listRepo.FindByID(listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDocumentListNotFound
		}
		return err
	}

	if _, err := s.favoriteRepo.FindByUserAndList(userID, listID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.favoriteRepo.Create(&model.FavoriteDocumentList{
		UserID:     userID,
		ListID:     listID,
		FavoriteAt: time.Now(),
	})
}

func (s *DocumentSocialService) RemoveFavorite(userID, listID uint) error {
	return s.favoriteRepo.DeleteByUserAndList(userID, listID)
}

func (s *DocumentSocialService) IsFavorite(userID, listID uint) (bool, error) {
	_, err := s.favoriteRepo.FindByUserAndList(userID, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetFavoriteLists 用户收藏的全部单词集
func (s *DocumentSocialService) GetFavoriteLists(userID uint) ([]model.DocumentList, error) {
	favorites, err := s.favoriteRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	lists := make([]model.DocumentList, 0, len(favorites))
	for _, favorite := range favorites {
		list, lerr := s.listRepo.FindByID(favorite.ListID)
		if lerr != nil {
			if errors.Is(lerr, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, lerr
		}
		lists = append(lists, *list)
	}
	return lists, nil
}

func (s *DocumentSocialService) GetFavoriteCount(listID uint) (int64, error) {
	return s.favoriteRepo.CountByList(listID)
}

func (s *DocumentSocialService) ReportList(userID, listID uint, reason string) error {
	if _, err := s.listRepo.FindByID(listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDocumentListNotFound
		}
		return err
	}

	return s.reportRepo.Create(&model.DocumentReport{
		UserID:     userID,
		ListID:     listID,
		Reason:     reason,
		ReportDate: time.Now(),
	})
}

func (s *DocumentSocialService) GetAllReports() ([]model.DocumentReport, error) {
	return s.reportRepo.FindAll()
}

func (s *DocumentSocialService) GetReportsByList(listID uint) ([]model.DocumentReport, error) {
	return s.reportRepo.FindByList(listID)
}

func (s *DocumentSocialService) DeleteReport(id uint) error {
	return s.reportRepo.Delete(id)
}
