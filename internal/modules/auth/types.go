package auth

import "errors"

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var (
	errUserNotFound  = errors.New("auth user not found")
	errWrongPassword = errors.New("auth wrong password")
)
