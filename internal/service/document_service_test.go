package service

import (
	"testing"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDocumentService(t *testing.T) (*DocumentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewDocumentService(repository.NewDocumentListRepository(db), repository.NewDocumentItemRepository(db))
	return svc, db
}

func seedList(t *testing.T, db *gorm.DB, userID uint, title, listType string, isPublic int) *model.DocumentList {
	t.Helper()
	list := &model.DocumentList{UserID: userID, Title: title, Type: listType, IsPublic: isPublic}
	require.NoError(t, db.Create(list).Error)
	return list
}

func TestGetListsByUserWithCounts(t *testing.T) {
	svc, db := newDocumentService(t)

	list := seedList(t, db, 1, "TOPIK 1급 필수 단어", "vocabulary", 0)
	require.NoError(t, db.Create(&model.DocumentItem{ListID: list.ID, Word: "사과", Meaning: "quả táo"}).Error)
	require.NoError(t, db.Create(&model.DocumentItem{ListID: list.ID, Word: "바다", Meaning: "biển"}).Error)
	seedList(t, db, 2, "다른 사람의 목록", "vocabulary", 0)

	lists, err := svc.GetListsByUser(1)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "TOPIK 1급 필수 단어", lists[0].Title)
	assert.Equal(t, int64(2), lists[0].ItemCount)
}

func TestGetPublicListsPagedFilters(t *testing.T) {
	svc, db := newDocumentService(t)

	seedList(t, db, 1, "여행 한국어", "travel", 1)
	seedList(t, db, 1, "음식 단어", "food", 1)
	seedList(t, db, 1, "비공개 목록", "travel", 0)

	lists, total, err := svc.GetPublicListsPaged("travel", "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, lists, 1)
	assert.Equal(t, "여행 한국어", lists[0].Title)

	// 关键字过滤
	lists, total, err = svc.GetPublicListsPaged("", "음식", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "음식 단어", lists[0].Title)
}

func TestGetPublicListsGroupedByType(t *testing.T) {
	svc, db := newDocumentService(t)

	seedList(t, db, 1, "여행 한국어", "travel", 1)
	seedList(t, db, 1, "서울 여행", "travel", 1)
	seedList(t, db, 1, "음식 단어", "food", 1)

	grouped, err := svc.GetPublicListsGroupedByType()
	require.NoError(t, err)
	assert.Len(t, grouped["travel"], 2)
	assert.Len(t, grouped["food"], 1)
}

func TestSetVisibility(t *testing.T) {
	svc, db := newDocumentService(t)

	list := seedList(t, db, 1, "목록", "vocabulary", 0)

	updated, err := svc.SetVisibility(list.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.IsPublic)

	_, err = svc.SetVisibility(999, 1)
	assert.ErrorIs(t, err, util.ErrDocumentListNotFound)
}

func TestDeleteListCascadesItems(t *testing.T) {
	svc, db := newDocumentService(t)

	list := seedList(t, db, 1, "목록", "vocabulary", 0)
	require.NoError(t, db.Create(&model.DocumentItem{ListID: list.ID, Word: "사과", Meaning: "quả táo"}).Error)

	require.NoError(t, svc.DeleteList(list.ID))

	_, err := svc.GetListByID(list.ID)
	assert.ErrorIs(t, err, util.ErrDocumentListNotFound)

	items, err := svc.GetItemsByList(list.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExportListToExcel(t *testing.T) {
	svc, db := newDocumentService(t)

	list := seedList(t, db, 1, "단어장", "vocabulary", 0)
	require.NoError(t, db.Create(&model.DocumentItem{ListID: list.ID, Word: "사과", Meaning: "quả táo", Example: "사과를 먹어요"}).Error)

	file, filename, err := svc.ExportListToExcel(list.ID)
	require.NoError(t, err)
	assert.Contains(t, filename, "단어장")

	rows, err := file.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"단어", "의미", "예문"}, rows[0])
	assert.Equal(t, "사과", rows[1][0])
	assert.Equal(t, "quả táo", rows[1][1])
}
