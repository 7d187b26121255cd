package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/auth"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/jwt"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/oauth"
	"github.com/finpay-hq/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const oauthProviderGoogle = "google"

type AuthServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	tokenRepo     auth.TokenRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, tokenRepo auth.TokenRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.MeResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.MeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         user.Role(req.Role),
		EmployeeCode: req.EmployeeCode,
	})
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.ToMeResponse(created), nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, "", 0, err
	}

	// OAuth-only accounts have no local password.
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.tokenRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeCode, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{AccessToken: accessToken, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.ParseRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	return s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
}

func (s *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if !principal.Authenticated {
		return auth.MeResponse{}, access.ErrUnauthenticated
	}

	u, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.ToMeResponse(u), nil
}

func (s *AuthServiceImpl) GoogleLoginURL(ctx context.Context, userAgent string) (string, string, error) {
	if s.googleService == nil {
		return "", "", auth.ErrOAuthNotEnabled
	}

	state := s.googleService.GenerateState(userAgent)
	if state == "" {
		return "", "", fmt.Errorf("failed to generate oauth state")
	}

	return s.googleService.RedirectURL(state), state, nil
}

func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, string, int64, error) {
	if s.googleService == nil {
		return auth.TokenResponse{}, "", 0, auth.ErrOAuthNotEnabled
	}

	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	profile, err := s.googleService.FetchProfile(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, err
		}
		// First sign-in: provision an employee-role account with no local
		// password and no affiliation. An admin links the employee record
		// afterwards.
		provider := oauthProviderGoogle
		providerID := profile.GoogleID
		u, err = s.userRepo.Create(ctx, user.User{
			Username:        usernameFromEmail(profile.Email),
			Email:           profile.Email,
			Role:            user.RoleEmployee,
			OAuthProvider:   &provider,
			OAuthProviderID: &providerID,
		})
		if err != nil {
			return auth.TokenResponse{}, "", 0, err
		}
	} else if u.OAuthProvider == nil {
		if err := s.userRepo.LinkOAuthProvider(ctx, u.ID, oauthProviderGoogle, profile.GoogleID); err != nil {
			return auth.TokenResponse{}, "", 0, err
		}
	}

	return s.issueTokens(ctx, u)
}

// issueTokens generates the token pair and records the refresh token in one
// transaction.
func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, string, int64, error) {
	var resp auth.TokenResponse
	var refreshToken string
	var refreshExpiresAt int64

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeCode, u.Role)
		if err != nil {
			return fmt.Errorf("failed to generate access token: %w", err)
		}
		resp = auth.TokenResponse{AccessToken: accessToken, TokenType: "Bearer", ExpiresAt: expiresAt}

		refreshToken, refreshExpiresAt, err = s.jwtService.GenerateRefreshToken(u.ID)
		if err != nil {
			return fmt.Errorf("failed to generate refresh token: %w", err)
		}

		if err := s.tokenRepo.CreateRefreshToken(txCtx, u.ID, refreshToken, refreshExpiresAt); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	return resp, refreshToken, refreshExpiresAt, nil
}

func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
