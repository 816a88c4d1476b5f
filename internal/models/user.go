package models

import "time"

// RoleAdmin is the only role in use; the auth gate rejects anything else.
const RoleAdmin = "admin"

// UserModel represents the site owner/admin account.
type UserModel struct {
	Base
	Username      string     `json:"username" gorm:"uniqueIndex;not null"`
	Password      string     `json:"-"        gorm:"not null"`
	Role          string     `json:"role"     gorm:"not null;default:'admin'"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }
