package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (MeResponse, error)
	// Login returns the access token plus a refresh token to be set as an
	// http-only cookie by the transport layer.
	Login(ctx context.Context, req LoginRequest) (resp TokenResponse, refreshToken string, refreshExpiresAt int64, err error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	// Logout revokes the refresh token server-side; access tokens age out.
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (MeResponse, error)
	// GoogleLoginURL starts the OAuth2 flow; GoogleCallback completes it and
	// issues tokens for the linked or newly provisioned user.
	GoogleLoginURL(ctx context.Context, userAgent string) (url string, state string, err error)
	GoogleCallback(ctx context.Context, code string) (resp TokenResponse, refreshToken string, refreshExpiresAt int64, err error)
}
