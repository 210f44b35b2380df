package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"
	"github.com/tctinsama/KtigerStudy/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	userRepo     *repository.UserRepository
	xpService    *XPService
	emailService *EmailService
	cfg          *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, xpService *XPService, emailService *EmailService, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		xpService:    xpService,
		emailService: emailService,
		cfg:          cfg,
	}
}

type SignUpRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) SignUp(req *SignUpRequest) (*AuthResult, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    string(hashed),
		Role:        model.RoleUser,
		JoinDate:    time.Now(),
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		UserStatus:  model.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// 建账失败不阻断注册，首次加经验时会惰性补建
	if _, err := s.xpService.CreateInitialUserXP(user.ID); err != nil {
		logger.Log.Warn("注册时经验台账创建失败",
			zap.Uint("userID", user.ID),
			zap.Error(err))
	}

	return s.issueToken(user)
}

func (s *AuthService) SignIn(email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if user.UserStatus == model.UserStatusFrozen {
		return nil, util.ErrUserFrozen
	}

	return s.issueToken(user)
}

// googleIDTokenPayload Google ID Token的载荷，仅取需要的字段
type googleIDTokenPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// SignInWithGoogle 解析Google ID Token载荷完成登录，邮箱不存在时自动注册。
func (s *AuthService) SignInWithGoogle(idToken string) (*AuthResult, error) {
	payload, err := decodeGoogleIDToken(idToken)
	if err != nil {
		return nil, err
	}
	if payload.Email == "" {
		return nil, fmt.Errorf("google token missing email claim")
	}

	user, err := s.userRepo.FindByEmail(payload.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// 首次Google登录自动建号，随机密码占位
		hashed, herr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		user = &model.User{
			FullName:    payload.Name,
			Email:       payload.Email,
			Password:    string(hashed),
			Role:        model.RoleUser,
			JoinDate:    time.Now(),
			AvatarImage: payload.Picture,
			UserStatus:  model.UserStatusActive,
		}
		if cerr := s.userRepo.Create(user); cerr != nil {
			return nil, cerr
		}
		if _, xerr := s.xpService.CreateInitialUserXP(user.ID); xerr != nil {
			logger.Log.Warn("Google注册时经验台账创建失败",
				zap.Uint("userID", user.ID),
				zap.Error(xerr))
		}
	}

	if user.UserStatus == model.UserStatusFrozen {
		return nil, util.ErrUserFrozen
	}

	return s.issueToken(user)
}

func decodeGoogleIDToken(idToken string) (*googleIDTokenPayload, error) {
	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed google id token")
	}
	data, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode google token payload: %w", err)
	}
	var payload googleIDTokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse google token payload: %w", err)
	}
	return &payload, nil
}

// ForgotPassword 签发15分钟有效的重置令牌并邮件发送重置链接。
// 邮箱未注册时静默返回，不向调用方暴露账号是否存在。
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Info("忽略未注册邮箱的重置请求", zap.String("email", email))
			return nil
		}
		return err
	}

	if err := s.userRepo.DeleteResetTokensByUser(user.ID); err != nil {
		return err
	}

	token := uuid.NewString()
	reset := &model.PasswordResetToken{
		UserID:     user.ID,
		Token:      token,
		ExpiryDate: time.Now().Add(resetTokenTTL),
	}
	if err := s.userRepo.CreateResetToken(reset); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", s.cfg.Mail.ResetURL, token)
	return s.emailService.SendPasswordReset(user.Email, user.FullName, resetLink)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	reset, err := s.userRepo.FindResetToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrInvalidResetToken
		}
		return err
	}

	if time.Now().After(reset.ExpiryDate) {
		s.userRepo.DeleteResetToken(reset.ID)
		return util.ErrResetTokenExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(reset.UserID, string(hashed)); err != nil {
		return err
	}

	return s.userRepo.DeleteResetToken(reset.ID)
}

func (s *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}
