package repository

import (
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}

// UpdateStatus 更新用户状态（冻结/解冻）
func (r *UserRepository) UpdateStatus(userID uint, status int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("user_status", status).
		Error
}

func (r *UserRepository) UpdateStatusBulk(userIDs []uint, status int) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.DB.Model(&model.User{}).
		Where("id IN ?", userIDs).
		Update("user_status", status).
		Error
}

func (r *UserRepository) UpdatePassword(userID uint, hashed string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", hashed).
		Error
}

// FindLearnersPaged 分页查询学员（角色为USER），keyword匹配姓名或邮箱
func (r *UserRepository) FindLearnersPaged(keyword string, page, size int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.DB.Model(&model.User{}).Where("role = ?", model.RoleUser)
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id ASC").Offset(page * size).Limit(size).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) CreateResetToken(token *model.PasswordResetToken) error {
	return r.DB.Create(token).Error
}

func (r *UserRepository) FindResetToken(token string) (*model.PasswordResetToken, error) {
	var reset model.PasswordResetToken
	err := r.DB.Where("token = ?", token).First(&reset).Error
	return &reset, err
}

func (r *UserRepository) DeleteResetToken(id uint) error {
	return r.DB.Unscoped().Delete(&model.PasswordResetToken{}, id).Error
}

// DeleteResetTokensByUser 签发新令牌前清理该用户的旧令牌
func (r *UserRepository) DeleteResetTokensByUser(userID uint) error {
	return r.DB.Unscoped().Where("user_id = ?", userID).Delete(&model.PasswordResetToken{}).Error
}

func (r *UserRepository) DeleteExpiredResetTokens(now time.Time) error {
	return r.DB.Unscoped().Where("expiry_date < ?", now).Delete(&model.PasswordResetToken{}).Error
}
