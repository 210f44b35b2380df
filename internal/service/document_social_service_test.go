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

func newDocumentSocialService(db *gorm.DB) *DocumentSocialService {
	return NewDocumentSocialService(
		repository.NewFavoriteRepository(db),
		repository.NewReportRepository(db),
		repository.NewDocumentListRepository(db),
	)
}

func TestAddFavoriteIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentSocialService(db)
	user := seedUser(t, db, "박학생", "student@example.com")
	list := seedList(t, db, user.ID, "여행 한국어", "travel", 1)

	require.NoError(t, svc.AddFavorite(user.ID, list.ID))
	require.NoError(t, svc.AddFavorite(user.ID, list.ID))

	var count int64
	db.Model(&model.FavoriteDocumentList{}).Count(&count)
	assert.Equal(t, int64(1), count)

	favored, err := svc.IsFavorite(user.ID, list.ID)
	require.NoError(t, err)
	assert.True(t, favored)
}

func TestAddFavoriteListNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentSocialService(db)
	user := seedUser(t, db, "박학생", "student@example.com")

	err := svc.AddFavorite(user.ID, 999)
	assert.ErrorIs(t, err, util.ErrDocumentListNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentSocialService(db)
	user := seedUser(t, db, "박학생", "student@example.com")
	list := seedList(t, db, user.ID, "여행 한국어", "travel", 1)

	require.NoError(t, svc.AddFavorite(user.ID, list.ID))
	require.NoError(t, svc.RemoveFavorite(user.ID, list.ID))

	favored, err := svc.IsFavorite(user.ID, list.ID)
	require.NoError(t, err)
	assert.False(t, favored)
}

func TestGetFavoriteListsSkipsDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentSocialService(db)
	docSvc := NewDocumentService(repository.NewDocumentListRepository(db), repository.NewDocumentItemRepository(db))
	user := seedUser(t, db, "박학생", "student@example.com")
	kept := seedList(t, db, user.ID, "남는 목록", "vocabulary", 1)
	removed := seedList(t, db, user.ID, "지워질 목록", "vocabulary", 1)

	require.NoError(t, svc.AddFavorite(user.ID, kept.ID))
	require.NoError(t, svc.AddFavorite(user.ID, removed.ID))
	require.NoError(t, docSvc.DeleteList(removed.ID))

	lists, err := svc.GetFavoriteLists(user.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "남는 목록", lists[0].Title)
}

func TestReportListAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentSocialService(db)
	user := seedUser(t, db, "박학생", "student@example.com")
	list := seedList(t, db, user.ID, "문제 있는 목록", "vocabulary", 1)

	require.NoError(t, svc.ReportList(user.ID, list.ID, "부적절한 내용"))

	reports, err := svc.GetAllReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "부적절한 내용", reports[0].Reason)
	assert.False(t, reports[0].ReportDate.IsZero())

	require.NoError(t, svc.DeleteReport(reports[0].ID))

	reports, err = svc.GetAllReports()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReportListNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentSocialService(db)
	user := seedUser(t, db, "박학생", "student@example.com")

	err := svc.ReportList(user.ID, 999, "이유")
	assert.ErrorIs(t, err, util.ErrDocumentListNotFound)
}
