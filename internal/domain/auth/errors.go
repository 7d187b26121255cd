package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrTokenExpired       = errors.New("token expired")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
	ErrOAuthNotEnabled    = errors.New("google login is not configured")
)
