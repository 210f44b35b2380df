package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"
	"github.com/tctinsama/KtigerStudy/pkg/logger"
	"github.com/tctinsama/KtigerStudy/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	leaderboardCacheKey = "ktiger:leaderboard"
	leaderboardCacheTTL = 5 * time.Minute
	leaderboardLimit    = 100
)

// XPService 用户经验台账。等级由阈值表推导，只升不降。
type XPService struct {
	xpRepo      *repository.XPRepository
	levelXPRepo *repository.LevelXPRepository
	redis       *redis.Client
}

func NewXPService(xpRepo *repository.XPRepository, levelXPRepo *repository.LevelXPRepository, rdb *redis.Client) *XPService {
	return &XPService{
		xpRepo:      xpRepo,
		levelXPRepo: levelXPRepo,
		redis:       rdb,
	}
}

func (s *XPService) GetUserXP(userID uint) (*model.UserXP, error) {
	xp, err := s.xpRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserXPNotFound
		}
		return nil, err
	}
	return xp, nil
}

// CreateInitialUserXP 注册时为用户建立台账。等级1阈值缺失属于配置错误，直接失败。
func (s *XPService) CreateInitialUserXP(userID uint) (*model.UserXP, error) {
	levelOne, err := s.levelXPRepo.FindByLevelNumber(1)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLevelOneMissing
		}
		return nil, err
	}

	xp := &model.UserXP{
		UserID:       userID,
		TotalXP:      0,
		LevelNumber:  1,
		CurrentTitle: levelOne.Title,
		CurrentBadge: levelOne.BadgeImage,
	}
	if err := s.xpRepo.Create(xp); err != nil {
		return nil, err
	}
	return xp, nil
}

// AddXP 增加经验并沿阈值表逐级上探，一次调用可连升多级。
// 台账不存在时在等级1惰性建账（等级1阈值行缺失时头衔徽章留空）。
// 整个读改写在事务内持行锁执行，并发加经验不会丢失更新。
func (s *XPService) AddXP(userID uint, amount int) (*model.UserXP, error) {
	var result *model.UserXP

	err := s.xpRepo.DB.Transaction(func(tx *gorm.DB) error {
		xp, err := s.xpRepo.FindByUserIDForUpdate(tx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			xp = &model.UserXP{
				UserID:      userID,
				TotalXP:     0,
				LevelNumber: 1,
			}
			if levelOne, lerr := s.levelXPRepo.FindByLevelNumberTx(tx, 1); lerr == nil {
				xp.CurrentTitle = levelOne.Title
				xp.CurrentBadge = levelOne.BadgeImage
			}
			if cerr := tx.Create(xp).Error; cerr != nil {
				return cerr
			}
		}

		// 数值不做校验，负数照加，但等级从不回落
		xp.TotalXP += amount

		for {
			next, nerr := s.levelXPRepo.FindByLevelNumberTx(tx, xp.LevelNumber+1)
			if nerr != nil {
				if errors.Is(nerr, gorm.ErrRecordNotFound) {
					break
				}
				return nerr
			}
			if xp.TotalXP < next.RequiredXP {
				break
			}
			xp.LevelNumber = next.LevelNumber
			xp.CurrentTitle = next.Title
			xp.CurrentBadge = next.BadgeImage
		}

		if err := s.xpRepo.Save(tx, xp); err != nil {
			return err
		}
		result = xp
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.XPAwardCounter.Inc()
	s.invalidateLeaderboard()

	logger.Log.Info("经验值已更新",
		zap.Uint("userID", userID),
		zap.Int("amount", amount),
		zap.Int("totalXP", result.TotalXP),
		zap.Int("level", result.LevelNumber))

	return result, nil
}

// GetLeaderboard 按累计经验降序返回排行榜，优先读Redis缓存。
func (s *XPService) GetLeaderboard() ([]repository.LeaderboardEntry, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(context.Background(), leaderboardCacheKey).Bytes()
		if err == nil {
			var entries []repository.LeaderboardEntry
			if jerr := json.Unmarshal(cached, &entries); jerr == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.xpRepo.FindLeaderboard(leaderboardLimit)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, jerr := json.Marshal(entries); jerr == nil {
			s.redis.Set(context.Background(), leaderboardCacheKey, data, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

func (s *XPService) invalidateLeaderboard() {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(context.Background(), leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("排行榜缓存清理失败", zap.Error(err))
	}
}
