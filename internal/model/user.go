package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// 用户状态 1=正常 0=冻结
const (
	UserStatusFrozen = 0
	UserStatusActive = 1
)

// swagger:model User
type User struct {
	BaseModel
	FullName    string    `gorm:"size:100;not null" json:"fullName"`
	Email       string    `gorm:"size:100;unique;not null" json:"email"`
	Password    string    `gorm:"size:100;not null" json:"-"`
	Role        UserRole  `gorm:"size:20;default:'USER'" json:"role"`
	JoinDate    time.Time `json:"joinDate"`
	DateOfBirth string    `gorm:"size:20" json:"dateOfBirth"`
	Gender      string    `gorm:"size:10" json:"gender"`
	AvatarImage string    `gorm:"size:255" json:"avatarImage"`
	UserStatus  int       `gorm:"default:1" json:"userStatus"`
}

func (User) TableName() string {
	return "users"
}

// PasswordResetToken 重置密码令牌，15分钟内有效
type PasswordResetToken struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	Token      string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiryDate time.Time `json:"expiryDate"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
