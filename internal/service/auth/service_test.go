package auth

import (
	"context"
	"testing"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/auth"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by ID
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "user-" + u.Username
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) LinkOAuthProvider(ctx context.Context, id string, provider string, providerID string) error {
	return nil
}

type fakeTokenRepo struct {
	revoked map[string]bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{revoked: map[string]bool{}}
}

func (f *fakeTokenRepo) CreateRefreshToken(ctx context.Context, userID, token string, expiresAt int64) error {
	return nil
}

func (f *fakeTokenRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func newTestService(userRepo user.UserRepository, tokenRepo auth.TokenRepository) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	return NewAuthService(nil, userRepo, tokenRepo, jwtService, nil), jwtService
}

func seededUserRepo(t *testing.T) *fakeUserRepo {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret12345"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	return &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Username: "alice", Email: "alice@finpay.example", PasswordHash: &hashStr, Role: user.RoleAdmin},
	}}
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("live token yields a new access token", func(t *testing.T) {
		tokenRepo := newFakeTokenRepo()
		svc, jwtService := newTestService(seededUserRepo(t), tokenRepo)

		refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		resp, err := svc.Refresh(context.Background(), refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		tokenRepo := newFakeTokenRepo()
		svc, jwtService := newTestService(seededUserRepo(t), tokenRepo)

		refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
		require.NoError(t, err)
		require.NoError(t, tokenRepo.RevokeRefreshToken(context.Background(), refreshToken))

		_, err = svc.Refresh(context.Background(), refreshToken)
		assert.ErrorIs(t, err, auth.ErrTokenRevoked)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc, _ := newTestService(seededUserRepo(t), newFakeTokenRepo())

		_, err := svc.Refresh(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes the refresh token", func(t *testing.T) {
		tokenRepo := newFakeTokenRepo()
		svc, jwtService := newTestService(seededUserRepo(t), tokenRepo)

		refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(context.Background(), refreshToken))
		assert.True(t, tokenRepo.revoked[refreshToken])

		_, err = svc.Refresh(context.Background(), refreshToken)
		assert.ErrorIs(t, err, auth.ErrTokenRevoked)
	})

	t.Run("rejects a non-refresh token", func(t *testing.T) {
		svc, _ := newTestService(seededUserRepo(t), newFakeTokenRepo())

		err := svc.Logout(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(seededUserRepo(t), newFakeTokenRepo())

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{Username: "alice", Password: "wrong-password"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{Username: "nobody", Password: "secret12345"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
