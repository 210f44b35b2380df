package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const exportSheetName = "Sheet1"

// DocumentListWithCount 单词集及其卡片数量
type DocumentListWithCount struct {
	model.DocumentList
	ItemCount int64 `json:"itemCount"`
}

type DocumentService struct {
	listRepo *repository.DocumentListRepository
	itemRepo *repository.DocumentItemRepository
}

func NewDocumentService(listRepo *repository.DocumentListRepository, itemRepo *repository.DocumentItemRepository) *DocumentService {
	return &DocumentService{listRepo: listRepo, itemRepo: itemRepo}
}

func (s *DocumentService) CreateList(list *model.DocumentList) error {
	return s.listRepo.Create(list)
}

func (s *DocumentService) GetListByID(id uint) (*model.DocumentList, error) {
	list, err := s.listRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDocumentListNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *DocumentService) GetListsByUser(userID uint) ([]DocumentListWithCount, error) {
	lists, err := s.listRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.withCounts(lists)
}

// GetPublicListsPaged 分页查询公开单词集，支持类型过滤与关键字搜索
func (s *DocumentService) GetPublicListsPaged(listType, keyword string, page, size int) ([]DocumentListWithCount, int64, error) {
	lists, total, err := s.listRepo.FindPublicPaged(listType, keyword, page, size)
	if err != nil {
		return nil, 0, err
	}
	withCounts, err := s.withCounts(lists)
	return withCounts, total, err
}

// GetPublicListsGroupedByType 公开单词集按类型分组
func (s *DocumentService) GetPublicListsGroupedByType() (map[string][]DocumentListWithCount, error) {
	types, err := s.listRepo.FindDistinctPublicTypes()
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]DocumentListWithCount, len(types))
	for _, listType := range types {
		lists, _, lerr := s.listRepo.FindPublicPaged(listType, "", 0, 100)
		if lerr != nil {
			return nil, lerr
		}
		withCounts, cerr := s.withCounts(lists)
		if cerr != nil {
			return nil, cerr
		}
		grouped[listType] = withCounts
	}
	return grouped, nil
}

func (s *DocumentService) GetPublicTypes() ([]string, error) {
	return s.listRepo.FindDistinctPublicTypes()
}

func (s *DocumentService) UpdateList(list *model.DocumentList) error {
	return s.listRepo.Update(list)
}

// SetVisibility 切换单词集公开/私有
func (s *DocumentService) SetVisibility(listID uint, isPublic int) (*model.DocumentList, error) {
	list, err := s.GetListByID(listID)
	if err != nil {
		return nil, err
	}
	list.IsPublic = isPublic
	if err := s.listRepo.Update(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *DocumentService) DeleteList(id uint) error {
	if _, err := s.GetListByID(id); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteByListID(id); err != nil {
		return err
	}
	return s.listRepo.Delete(id)
}

func (s *DocumentService) CreateItem(item *model.DocumentItem) error {
	if _, err := s.GetListByID(item.ListID); err != nil {
		return err
	}
	return s.itemRepo.Create(item)
}

func (s *DocumentService) GetItemByID(id uint) (*model.DocumentItem, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDocumentListNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *DocumentService) GetItemsByList(listID uint) ([]model.DocumentItem, error) {
	return s.itemRepo.FindByListID(listID)
}

func (s *DocumentService) UpdateItem(item *model.DocumentItem) error {
	return s.itemRepo.Update(item)
}

func (s *DocumentService) DeleteItem(id uint) error {
	return s.itemRepo.Delete(id)
}

// ExportListToExcel 将单词集导出为xlsx，列依次为单词、释义、例句
func (s *DocumentService) ExportListToExcel(listID uint) (*excelize.File, string, error) {
	list, err := s.GetListByID(listID)
	if err != nil {
		return nil, "", err
	}

	items, err := s.itemRepo.FindByListID(listID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	f.SetCellValue(exportSheetName, "A1", "단어")
	f.SetCellValue(exportSheetName, "B1", "의미")
	f.SetCellValue(exportSheetName, "C1", "예문")

	for i, item := range items {
		row := i + 2
		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), item.Word)
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), item.Meaning)
		f.SetCellValue(exportSheetName, fmt.Sprintf("C%d", row), item.Example)
	}

	filename := fmt.Sprintf("%s.xlsx", strings.ReplaceAll(list.Title, "/", "_"))
	return f, filename, nil
}

// ImportItemsFromExcel 从xlsx批量导入闪卡，跳过表头与空行
func (s *DocumentService) ImportItemsFromExcel(listID uint, file multipart.File) (int, error) {
	if _, err := s.GetListByID(listID); err != nil {
		return 0, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return 0, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("打开Excel文件失败: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}

	items := make([]model.DocumentItem, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" || strings.TrimSpace(row[1]) == "" {
			continue
		}
		item := model.DocumentItem{
			ListID:  listID,
			Word:    strings.TrimSpace(row[0]),
			Meaning: strings.TrimSpace(row[1]),
		}
		if len(row) > 2 {
			item.Example = strings.TrimSpace(row[2])
		}
		items = append(items, item)
	}

	if err := s.itemRepo.CreateBatch(items); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *DocumentService) withCounts(lists []model.DocumentList) ([]DocumentListWithCount, error) {
	result := make([]DocumentListWithCount, 0, len(lists))
	for _, list := range lists {
		count, err := s.itemRepo.CountByListID(list.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, DocumentListWithCount{DocumentList: list, ItemCount: count})
	}
	return result, nil
}
