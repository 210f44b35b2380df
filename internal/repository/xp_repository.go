package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type XPRepository struct {
	DB *gorm.DB
}

func NewXPRepository(db *gorm.DB) *XPRepository {
	return &XPRepository{DB: db}
}

func (r *XPRepository) Create(xp *model.UserXP) error {
	return r.DB.Create(xp).Error
}

func (r *XPRepository) FindByUserID(userID uint) (*model.UserXP, error) {
	var xp model.UserXP
	err := r.DB.Where("user_id = ?", userID).First(&xp).Error
	return &xp, err
}

// FindByUserIDForUpdate 在事务内加行锁读取台账，避免并发加经验时丢失更新。
// sqlite 是单写者，不支持也不需要 FOR UPDATE。
func (r *XPRepository) FindByUserIDForUpdate(tx *gorm.DB, userID uint) (*model.UserXP, error) {
	var xp model.UserXP
	query := tx.Where("user_id = ?", userID)
	if tx.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.First(&xp).Error
	return &xp, err
}

func (r *XPRepository) Save(tx *gorm.DB, xp *model.UserXP) error {
	return tx.Save(xp).Error
}

// LeaderboardEntry 排行榜条目，按累计经验降序
type LeaderboardEntry struct {
	UserID       uint   `json:"userId"`
	FullName     string `json:"fullName"`
	AvatarImage  string `json:"avatarImage"`
	TotalXP      int    `json:"totalXP"`
	LevelNumber  int    `json:"levelNumber"`
	CurrentTitle string `json:"currentTitle"`
	CurrentBadge string `json:"currentBadge"`
}

func (r *XPRepository) FindLeaderboard(limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.DB.Table("user_xp").
		Select("user_xp.user_id, users.full_name, users.avatar_image, user_xp.total_xp, user_xp.level_number, user_xp.current_title, user_xp.current_badge").
		Joins("JOIN users ON users.id = user_xp.user_id").
		Where("users.deleted_at IS NULL").
		Order("user_xp.total_xp DESC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

type LevelXPRepository struct {
	DB *gorm.DB
}

func NewLevelXPRepository(db *gorm.DB) *LevelXPRepository {
	return &LevelXPRepository{DB: db}
}

func (r *LevelXPRepository) FindByLevelNumber(levelNumber int) (*model.LevelXP, error) {
	var level model.LevelXP
	err := r.DB.Where("level_number = ?", levelNumber).First(&level).Error
	return &level, err
}

func (r *LevelXPRepository) FindByLevelNumberTx(tx *gorm.DB, levelNumber int) (*model.LevelXP, error) {
	var level model.LevelXP
	err := tx.Where("level_number = ?", levelNumber).First(&level).Error
	return &level, err
}

func (r *LevelXPRepository) FindAll() ([]model.LevelXP, error) {
	var levels []model.LevelXP
	err := r.DB.Order("level_number ASC").Find(&levels).Error
	return levels, err
}

// Upsert 按LevelNumber新增或覆盖阈值行
func (r *LevelXPRepository) Upsert(level *model.LevelXP) error {
	return r.DB.Save(level).Error
}

func (r *LevelXPRepository) Delete(levelNumber int) error {
	return r.DB.Where("level_number = ?", levelNumber).Delete(&model.LevelXP{}).Error
}
