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

func newLessonService(t *testing.T) (*LessonService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	xpService := NewXPService(repository.NewXPRepository(db), repository.NewLevelXPRepository(db), nil)
	svc := NewLessonService(repository.NewLessonRepository(db), repository.NewProgressRepository(db), xpService)
	return svc, db
}

func TestGetLessonsWithProgressLockStates(t *testing.T) {
	svc, db := newLessonService(t)

	level := model.Level{LevelName: "TOPIK 1급"}
	require.NoError(t, db.Create(&level).Error)
	lessons := seedLessons(t, db, level.ID, "한글 읽기", "인사 표현", "숫자 세기")
	user := seedUser(t, db, "Alice", "alice@test.com")

	// 没有任何进度：第一课解锁，其余全锁
	result, err := svc.GetLessonsWithProgress(level.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.False(t, result[0].Locked)
	assert.True(t, result[1].Locked)
	assert.True(t, result[2].Locked)

	// 完成第一课后第二课解锁，第三课仍锁
	seedThresholds(t, db, defaultThresholds())
	_, err = svc.CompleteLesson(user.ID, lessons[0].ID, 80)
	require.NoError(t, err)

	result, err = svc.GetLessonsWithProgress(level.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, result[0].Completed)
	assert.False(t, result[0].Locked)
	assert.False(t, result[1].Locked)
	assert.True(t, result[2].Locked)
}

func TestCompleteLessonFirstTimeAwardsXP(t *testing.T) {
	svc, db := newLessonService(t)
	seedThresholds(t, db, defaultThresholds())

	level := model.Level{LevelName: "TOPIK 1급"}
	require.NoError(t, db.Create(&level).Error)
	lessons := seedLessons(t, db, level.ID, "한글 읽기")
	user := seedUser(t, db, "Alice", "alice@test.com")

	result, err := svc.CompleteLesson(user.ID, lessons[0].ID, 150)
	require.NoError(t, err)

	assert.True(t, result.Completed)
	assert.True(t, result.IsFirstTime)
	assert.True(t, result.XPAdded)
	require.NotNil(t, result.XPData)
	assert.Equal(t, 150, result.XPData.TotalXP)
	assert.Equal(t, 2, result.XPData.LevelNumber)
}

func TestCompleteLessonRepeatNoXP(t *testing.T) {
	svc, db := newLessonService(t)
	seedThresholds(t, db, defaultThresholds())

	level := model.Level{LevelName: "TOPIK 1급"}
	require.NoError(t, db.Create(&level).Error)
	lessons := seedLessons(t, db, level.ID, "한글 읽기")
	user := seedUser(t, db, "Alice", "alice@test.com")

	_, err := svc.CompleteLesson(user.ID, lessons[0].ID, 100)
	require.NoError(t, err)

	// 重复完成不再加经验
	result, err := svc.CompleteLesson(user.ID, lessons[0].ID, 100)
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.False(t, result.IsFirstTime)
	assert.False(t, result.XPAdded)
	assert.Nil(t, result.XPData)

	var xp model.UserXP
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&xp).Error)
	assert.Equal(t, 100, xp.TotalXP)
}

func TestCompleteLessonUnknownLesson(t *testing.T) {
	svc, _ := newLessonService(t)

	_, err := svc.CompleteLesson(1, 999, 50)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}
