package service

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile 更新用户资料（姓名、出生日期、性别、头像）
func (s *UserService) UpdateProfile(userID uint, fullName, dateOfBirth, gender, avatarImage string) (*model.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if dateOfBirth != "" {
		user.DateOfBirth = dateOfBirth
	}
	if gender != "" {
		user.Gender = gender
	}
	if avatarImage != "" {
		user.AvatarImage = avatarImage
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}

// GetLearnersPaged 管理端分页查询学员，keyword匹配姓名或邮箱
func (s *UserService) GetLearnersPaged(keyword string, page, size int) ([]model.User, int64, error) {
	return s.userRepo.FindLearnersPaged(keyword, page, size)
}

func (s *UserService) FreezeUser(userID uint) error {
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}
	return s.userRepo.UpdateStatus(userID, model.UserStatusFrozen)
}

func (s *UserService) UnfreezeUser(userID uint) error {
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}
	return s.userRepo.UpdateStatus(userID, model.UserStatusActive)
}

func (s *UserService) FreezeUsersBulk(userIDs []uint) error {
	return s.userRepo.UpdateStatusBulk(userIDs, model.UserStatusFrozen)
}

func (s *UserService) UnfreezeUsersBulk(userIDs []uint) error {
	return s.userRepo.UpdateStatusBulk(userIDs, model.UserStatusActive)
}

func (s *UserService) DeleteUser(userID uint) error {
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}
