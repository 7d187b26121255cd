package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret", "1h", "168h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()
	code := "EMP001"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "alice", &code, user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "EMP001", claims["employee_id"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NoAffiliation(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "admin", nil, user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestParseRefreshToken(t *testing.T) {
	svc := newTestService()

	t.Run("round trip", func(t *testing.T) {
		refreshToken, _, err := svc.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		userID, err := svc.ParseRefreshToken(refreshToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		accessToken, _, err := svc.GenerateAccessToken("user-1", "alice", nil, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ParseRefreshToken(accessToken)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := svc.ParseRefreshToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("foreign key is rejected", func(t *testing.T) {
		other := NewJWTService("another-secret", "1h", "168h")
		refreshToken, _, err := other.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		_, err = svc.ParseRefreshToken(refreshToken)
		assert.Error(t, err)
	})
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("tok", time.Now().Add(time.Hour).Unix())
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}
