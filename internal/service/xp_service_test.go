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

func newXPService(t *testing.T) (*XPService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewXPService(repository.NewXPRepository(db), repository.NewLevelXPRepository(db), nil), db
}

func defaultThresholds() []model.LevelXP {
	return []model.LevelXP{
		{LevelNumber: 1, RequiredXP: 0, Title: "호랑이 새끼", BadgeImage: "badge1.png"},
		{LevelNumber: 2, RequiredXP: 100, Title: "아기 호랑이", BadgeImage: "badge2.png"},
		{LevelNumber: 3, RequiredXP: 300, Title: "젊은 호랑이", BadgeImage: "badge3.png"},
	}
}

func TestCreateInitialUserXP(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	xp, err := svc.CreateInitialUserXP(7)
	require.NoError(t, err)

	assert.Equal(t, uint(7), xp.UserID)
	assert.Equal(t, 0, xp.TotalXP)
	assert.Equal(t, 1, xp.LevelNumber)
	assert.Equal(t, "호랑이 새끼", xp.CurrentTitle)
	assert.Equal(t, "badge1.png", xp.CurrentBadge)
}

func TestCreateInitialUserXPMissingLevelOne(t *testing.T) {
	svc, _ := newXPService(t)

	_, err := svc.CreateInitialUserXP(7)
	assert.ErrorIs(t, err, util.ErrLevelOneMissing)
}

func TestAddXPLevelUp(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	_, err := svc.CreateInitialUserXP(1)
	require.NoError(t, err)

	xp, err := svc.AddXP(1, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, xp.TotalXP)
	assert.Equal(t, 2, xp.LevelNumber)
	assert.Equal(t, "아기 호랑이", xp.CurrentTitle)

	xp, err = svc.AddXP(1, 50)
	require.NoError(t, err)
	assert.Equal(t, 300, xp.TotalXP)
	assert.Equal(t, 3, xp.LevelNumber)
	assert.Equal(t, "젊은 호랑이", xp.CurrentTitle)
}

func TestAddXPMultiLevelJump(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	_, err := svc.CreateInitialUserXP(1)
	require.NoError(t, err)

	// 一次加分直接跨过两个阈值
	xp, err := svc.AddXP(1, 350)
	require.NoError(t, err)
	assert.Equal(t, 350, xp.TotalXP)
	assert.Equal(t, 3, xp.LevelNumber)
}

func TestAddXPLazyCreate(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	// 没有预建台账，AddXP 时惰性创建
	xp, err := svc.AddXP(42, 50)
	require.NoError(t, err)
	assert.Equal(t, uint(42), xp.UserID)
	assert.Equal(t, 50, xp.TotalXP)
	assert.Equal(t, 1, xp.LevelNumber)
	assert.Equal(t, "호랑이 새끼", xp.CurrentTitle)
}

func TestAddXPLazyCreateWithoutLevelOneRow(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, []model.LevelXP{
		{LevelNumber: 2, RequiredXP: 100, Title: "아기 호랑이"},
	})

	// 等级1阈值行缺失时头衔和徽章留空，但建账照常
	xp, err := svc.AddXP(42, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, xp.LevelNumber)
	assert.Empty(t, xp.CurrentTitle)
	assert.Empty(t, xp.CurrentBadge)
}

func TestAddXPNegativeNeverDemotes(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	_, err := svc.AddXP(1, 250)
	require.NoError(t, err)

	// 负数照加，累计值可以回落，但等级不降
	xp, err := svc.AddXP(1, -200)
	require.NoError(t, err)
	assert.Equal(t, 50, xp.TotalXP)
	assert.Equal(t, 2, xp.LevelNumber)
}

func TestAddXPNoFurtherThreshold(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	// 超过最高阈值后继续加分也停在最高等级
	xp, err := svc.AddXP(1, 100000)
	require.NoError(t, err)
	assert.Equal(t, 3, xp.LevelNumber)
}

func TestGetUserXPNotFound(t *testing.T) {
	svc, _ := newXPService(t)

	_, err := svc.GetUserXP(99)
	assert.ErrorIs(t, err, util.ErrUserXPNotFound)
}

func TestGetLeaderboardOrder(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	alice := seedUser(t, db, "Alice", "alice@test.com")
	bob := seedUser(t, db, "Bob", "bob@test.com")
	carol := seedUser(t, db, "Carol", "carol@test.com")

	_, err := svc.AddXP(alice.ID, 120)
	require.NoError(t, err)
	_, err = svc.AddXP(bob.ID, 400)
	require.NoError(t, err)
	_, err = svc.AddXP(carol.ID, 30)
	require.NoError(t, err)

	entries, err := svc.GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Bob", entries[0].FullName)
	assert.Equal(t, 400, entries[0].TotalXP)
	assert.Equal(t, 3, entries[0].LevelNumber)
	assert.Equal(t, "Alice", entries[1].FullName)
	assert.Equal(t, "Carol", entries[2].FullName)
}

func TestGetLeaderboardExcludesDeletedUsers(t *testing.T) {
	svc, db := newXPService(t)
	seedThresholds(t, db, defaultThresholds())

	alice := seedUser(t, db, "Alice", "alice@test.com")
	bob := seedUser(t, db, "Bob", "bob@test.com")

	_, err := svc.AddXP(alice.ID, 100)
	require.NoError(t, err)
	_, err = svc.AddXP(bob.ID, 200)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.User{}, bob.ID).Error)

	entries, err := svc.GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].FullName)
}
