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

func newProgressService(t *testing.T) (*ProgressService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewLessonRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func TestProgressCompleteLessonPreCreatesNext(t *testing.T) {
	svc, db := newProgressService(t)

	level := model.Level{LevelName: "TOPIK 1급"}
	require.NoError(t, db.Create(&level).Error)
	lessons := seedLessons(t, db, level.ID, "한글 읽기", "인사 표현")
	user := seedUser(t, db, "Alice", "alice@test.com")

	require.NoError(t, svc.CompleteLesson(user.ID, lessons[0].ID))

	var current model.UserProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).First(&current).Error)
	assert.True(t, current.IsLessonCompleted)

	// 下一课已预建未完成记录
	var next model.UserProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[1].ID).First(&next).Error)
	assert.False(t, next.IsLessonCompleted)

	// 这条路径不触碰经验台账
	var count int64
	require.NoError(t, db.Model(&model.UserXP{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProgressCompleteLastLessonNoNext(t *testing.T) {
	svc, db := newProgressService(t)

	level := model.Level{LevelName: "TOPIK 1급"}
	require.NoError(t, db.Create(&level).Error)
	lessons := seedLessons(t, db, level.ID, "한글 읽기")
	user := seedUser(t, db, "Alice", "alice@test.com")

	// 级别内没有下一课时不报错，也不多建记录
	require.NoError(t, svc.CompleteLesson(user.ID, lessons[0].ID))

	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProgressCompleteLessonRepeatKeepsNextRecord(t *testing.T) {
	svc, db := newProgressService(t)

	level := model.Level{LevelName: "TOPIK 1급"}
	require.NoError(t, db.Create(&level).Error)
	lessons := seedLessons(t, db, level.ID, "한글 읽기", "인사 표현")
	user := seedUser(t, db, "Alice", "alice@test.com")

	require.NoError(t, svc.CompleteLesson(user.ID, lessons[0].ID))
	require.NoError(t, svc.CompleteLesson(user.ID, lessons[0].ID))

	// 重复完成不会重复预建
	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Where("user_id = ? AND lesson_id = ?", user.ID, lessons[1].ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProgressCompleteLessonUnknownUser(t *testing.T) {
	svc, db := newProgressService(t)

	level := model.Level{LevelName: "TOPIK 1급"}
	require.NoError(t, db.Create(&level).Error)
	lessons := seedLessons(t, db, level.ID, "한글 읽기")

	err := svc.CompleteLesson(999, lessons[0].ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
