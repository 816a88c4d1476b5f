package user

import "errors"

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

var (
	errUserNotFound  = errors.New("user not found")
	errWrongPassword = errors.New("wrong current password")
)
