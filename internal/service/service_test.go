package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 为每个测试建立独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.PasswordResetToken{},
		&model.Level{},
		&model.Lesson{},
		&model.VocabularyTheory{},
		&model.GrammarTheory{},
		&model.Exercise{},
		&model.MultipleChoiceQuestion{},
		&model.SentenceRewritingQuestion{},
		&model.UserExerciseResult{},
		&model.UserProgress{},
		&model.UserXP{},
		&model.LevelXP{},
		&model.DocumentList{},
		&model.DocumentItem{},
		&model.FavoriteDocumentList{},
		&model.DocumentReport{},
		&model.ClassEntity{},
		&model.ClassUser{},
		&model.ClassDocumentList{},
		&model.ChatConversation{},
		&model.ChatMessage{},
	))

	return db
}

// seedThresholds 写入测试用的等级阈值表
func seedThresholds(t *testing.T, db *gorm.DB, levels []model.LevelXP) {
	t.Helper()
	for i := range levels {
		require.NoError(t, db.Create(&levels[i]).Error)
	}
}

func seedUser(t *testing.T, db *gorm.DB, fullName, email string) *model.User {
	t.Helper()
	user := &model.User{
		FullName:   fullName,
		Email:      email,
		Password:   "hashed",
		Role:       model.RoleUser,
		JoinDate:   time.Now(),
		UserStatus: model.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedLessons(t *testing.T, db *gorm.DB, levelID uint, names ...string) []model.Lesson {
	t.Helper()
	lessons := make([]model.Lesson, 0, len(names))
	for _, name := range names {
		lesson := model.Lesson{LevelID: levelID, LessonName: name}
		require.NoError(t, db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}
	return lessons
}
