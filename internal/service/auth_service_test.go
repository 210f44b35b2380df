package service

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-used-only-in-unit-tests"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Mail.ResetURL = "http://localhost/reset-password"

	userRepo := repository.NewUserRepository(db)
	xpService := NewXPService(repository.NewXPRepository(db), repository.NewLevelXPRepository(db), nil)
	emailService := NewEmailService(cfg.Mail)
	return NewAuthService(userRepo, xpService, emailService, cfg), db
}

func TestSignUpCreatesUserAndLedger(t *testing.T) {
	svc, db := newAuthService(t)
	seedThresholds(t, db, defaultThresholds())

	result, err := svc.SignUp(&SignUpRequest{
		FullName: "Nguyễn Văn A",
		Email:    "a@test.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, model.RoleUser, result.User.Role)
	assert.NotEqual(t, "secret123", result.User.Password)

	var xp model.UserXP
	require.NoError(t, db.Where("user_id = ?", result.User.ID).First(&xp).Error)
	assert.Equal(t, 1, xp.LevelNumber)
	assert.Equal(t, "호랑이 새끼", xp.CurrentTitle)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, db := newAuthService(t)
	seedThresholds(t, db, defaultThresholds())

	req := &SignUpRequest{FullName: "A", Email: "dup@test.com", Password: "secret123"}
	_, err := svc.SignUp(req)
	require.NoError(t, err)

	_, err = svc.SignUp(req)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestSignUpSurvivesMissingLevelOne(t *testing.T) {
	svc, db := newAuthService(t)

	// 阈值表为空时建账失败，但注册本身成功
	result, err := svc.SignUp(&SignUpRequest{FullName: "A", Email: "a@test.com", Password: "secret123"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.UserXP{}).Where("user_id = ?", result.User.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSignInWrongPassword(t *testing.T) {
	svc, db := newAuthService(t)
	seedThresholds(t, db, defaultThresholds())

	_, err := svc.SignUp(&SignUpRequest{FullName: "A", Email: "a@test.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.SignIn("a@test.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.SignIn("unknown@test.com", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestSignInFrozenUser(t *testing.T) {
	svc, db := newAuthService(t)
	seedThresholds(t, db, defaultThresholds())

	result, err := svc.SignUp(&SignUpRequest{FullName: "A", Email: "a@test.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", result.User.ID).
		Update("user_status", model.UserStatusFrozen).Error)

	_, err = svc.SignIn("a@test.com", "secret123")
	assert.ErrorIs(t, err, util.ErrUserFrozen)
}

func fakeGoogleIDToken(t *testing.T, payload string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func TestSignInWithGoogleAutoRegisters(t *testing.T) {
	svc, db := newAuthService(t)
	seedThresholds(t, db, defaultThresholds())

	token := fakeGoogleIDToken(t, `{"email":"g@test.com","name":"Google User","picture":"http://p/avatar.png"}`)
	result, err := svc.SignInWithGoogle(token)
	require.NoError(t, err)
	assert.Equal(t, "Google User", result.User.FullName)
	assert.Equal(t, "http://p/avatar.png", result.User.AvatarImage)

	// 再次登录走已有账号，不重复建号
	again, err := svc.SignInWithGoogle(token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignInWithGoogleMalformedToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.SignInWithGoogle("not-a-jwt")
	assert.Error(t, err)
}

func TestForgotPasswordUnknownEmailSilent(t *testing.T) {
	svc, db := newAuthService(t)

	// 未注册邮箱静默成功，不暴露账号是否存在
	require.NoError(t, svc.ForgotPassword("nobody@test.com"))

	var count int64
	require.NoError(t, db.Model(&model.PasswordResetToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResetPasswordFlow(t *testing.T) {
	svc, db := newAuthService(t)
	seedThresholds(t, db, defaultThresholds())

	result, err := svc.SignUp(&SignUpRequest{FullName: "A", Email: "a@test.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword("a@test.com"))

	var reset model.PasswordResetToken
	require.NoError(t, db.Where("user_id = ?", result.User.ID).First(&reset).Error)

	require.NoError(t, svc.ResetPassword(reset.Token, "newpassword"))

	// 旧密码失效，新密码生效，令牌一次性
	_, err = svc.SignIn("a@test.com", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, err = svc.SignIn("a@test.com", "newpassword")
	assert.NoError(t, err)

	err = svc.ResetPassword(reset.Token, "another")
	assert.ErrorIs(t, err, util.ErrInvalidResetToken)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, db := newAuthService(t)
	seedThresholds(t, db, defaultThresholds())

	result, err := svc.SignUp(&SignUpRequest{FullName: "A", Email: "a@test.com", Password: "secret123"})
	require.NoError(t, err)

	reset := &model.PasswordResetToken{
		UserID:     result.User.ID,
		Token:      "expired-token",
		ExpiryDate: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(reset).Error)

	err = svc.ResetPassword("expired-token", "newpassword")
	assert.ErrorIs(t, err, util.ErrResetTokenExpired)
}
