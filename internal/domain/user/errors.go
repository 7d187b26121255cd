package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already registered")
	ErrInvalidRole    = errors.New("invalid role")
)
