package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrUserFrozen           = errors.New("账号已被冻结，请联系管理员")
	ErrInvalidCredentials   = errors.New("邮箱或密码错误")
	ErrLevelNotFound        = errors.New("level not found")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrUserXPNotFound       = errors.New("user xp not found")
	ErrLevelXPNotFound      = errors.New("level xp not found")
	ErrLevelOneMissing      = errors.New("level 1 threshold data missing")
	ErrDocumentListNotFound = errors.New("document list not found")
	ErrClassNotFound        = errors.New("class not found")
	ErrWrongClassPassword   = errors.New("班级口令错误")
	ErrAlreadyInClass       = errors.New("already joined this class")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidResetToken    = errors.New("重置令牌无效")
	ErrResetTokenExpired    = errors.New("重置令牌已过期")
)
