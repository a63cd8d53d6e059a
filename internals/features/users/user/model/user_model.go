package model

import (
	"strings"
	"time"

	common "schoolhub_backend/internals/features/common/model"
)

const (
	UserStatusActive    = "active"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"

	MembershipFree    = "free"
	MembershipPremium = "premium"
	MembershipTrial   = "trial"

	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// UserModel represents the users table. PasswordHash is never serialized.
type UserModel struct {
	common.BaseModel

	Name          string `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,notblank,max=255"`
	DisplayName   string `gorm:"type:varchar(255);column:display_name" json:"display_name" validate:"max=255"`
	Email         string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email,where:deleted IS NULL;column:email" json:"email" validate:"required,email"`
	EmailVerified bool   `gorm:"not null;default:false;column:email_verified" json:"email_verified"`
	PasswordHash  string `gorm:"type:text;column:password_hash" json:"-"`

	Role       string `gorm:"type:user_role;not null;default:'guest';column:role" json:"role" validate:"oneof=guest user admin"`
	Status     string `gorm:"type:user_status;not null;default:'active';column:status" json:"status" validate:"oneof=active pending suspended"`
	Membership string `gorm:"type:user_membership;not null;default:'free';column:membership" json:"membership" validate:"oneof=free premium trial"`
	Gender     string `gorm:"type:user_gender;not null;default:'other';column:gender" json:"gender" validate:"oneof=male female other"`

	AvatarURL   string     `gorm:"type:text;column:avatar_url" json:"avatar_url"`
	LastLogin   *time.Time `gorm:"type:timestamptz;column:last_login" json:"last_login"`
	DateOfBirth common.Day `gorm:"column:date_of_birth" json:"date_of_birth"`
	Phone       string     `gorm:"type:varchar(32);column:phone" json:"phone"`
	Bio         string     `gorm:"type:text;column:bio" json:"bio"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills enum defaults before validation.
func (u *UserModel) SetDefaultValues() {
	u.Email = strings.TrimSpace(u.Email)
	if u.DisplayName == "" {
		u.DisplayName = u.Name
	}
	if u.Role == "" {
		u.Role = "guest"
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
	if u.Membership == "" {
		u.Membership = MembershipFree
	}
	if u.Gender == "" {
		u.Gender = GenderOther
	}
}

func (u *UserModel) UniqueKeys() []string {
	return []string{"email:" + strings.TrimSpace(u.Email)}
}

func (u *UserModel) IsAdmin() bool { return u.Role == "admin" }
