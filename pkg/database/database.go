package database

import (
	"fmt"
	"log"

	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 执行全部表结构迁移并写入默认参照数据
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
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
	)
	if err != nil {
		return err
	}

	// 默认等级阈值表，空库时写入
	var count int64
	db.Model(&model.LevelXP{}).Count(&count)
	if count == 0 {
		defaultThresholds := []model.LevelXP{
			{LevelNumber: 1, RequiredXP: 0, Title: "호랑이 새끼", BadgeImage: "/badges/level1.png"},
			{LevelNumber: 2, RequiredXP: 100, Title: "어린 호랑이", BadgeImage: "/badges/level2.png"},
			{LevelNumber: 3, RequiredXP: 300, Title: "성장한 호랑이", BadgeImage: "/badges/level3.png"},
			{LevelNumber: 4, RequiredXP: 600, Title: "용감한 호랑이", BadgeImage: "/badges/level4.png"},
			{LevelNumber: 5, RequiredXP: 1000, Title: "백두산 호랑이", BadgeImage: "/badges/level5.png"},
			{LevelNumber: 6, RequiredXP: 1500, Title: "호랑이 왕", BadgeImage: "/badges/level6.png"},
		}
		for _, t := range defaultThresholds {
			db.Create(&t)
		}
	}

	return nil
}
