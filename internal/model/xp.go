package model

import "time"

// LevelXP 等级经验阈值表（静态参照数据），LevelNumber为主键
// RequiredXP 为达到该等级所需的累计经验值
type LevelXP struct {
	LevelNumber int    `gorm:"primaryKey;autoIncrement:false" json:"levelNumber"`
	RequiredXP  int    `gorm:"not null" json:"requiredXP"`
	Title       string `gorm:"size:100" json:"title"`
	BadgeImage  string `gorm:"size:255" json:"badgeImage"`
}

func (LevelXP) TableName() string {
	return "level_xp"
}

// UserXP 用户经验台账，每个用户一条
// 不变式：LevelNumber 恒为满足 RequiredXP <= TotalXP 的最高等级，且只升不降
type UserXP struct {
	BaseModel
	UserID       uint   `gorm:"uniqueIndex;not null" json:"userId"`
	TotalXP      int    `gorm:"default:0" json:"totalXP"`
	LevelNumber  int    `gorm:"default:1" json:"levelNumber"`
	CurrentTitle string `gorm:"size:100" json:"currentTitle"`
	CurrentBadge string `gorm:"size:255" json:"currentBadge"`
}

func (UserXP) TableName() string {
	return "user_xp"
}

// UserProgress 用户课时完成记录，(UserID, LessonID) 唯一
type UserProgress struct {
	BaseModel
	UserID            uint      `gorm:"index:idx_user_lesson,unique;not null" json:"userId"`
	LessonID          uint      `gorm:"index:idx_user_lesson,unique;not null" json:"lessonId"`
	IsLessonCompleted bool      `gorm:"default:false" json:"isLessonCompleted"`
	LastAccessed      time.Time `json:"lastAccessed"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
