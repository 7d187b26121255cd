package auth

import "context"

// TokenRepository tracks issued refresh tokens so they can be revoked before
// their JWT expiry. Tokens are stored hashed.
type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID, token string, expiresAt int64) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}
