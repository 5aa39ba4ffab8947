package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/config"
	"outreach/internal/domain/entity"
)

func newTestTokenService() *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, ok := NewJWTService(cfg).(*jwtService)
	if !ok {
		panic("NewJWTService did not return *jwtService")
	}

	return svc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	accessToken, refreshToken, err := svc.GenerateTokens("chw-001", entity.RoleCommunityHealthWorker)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "chw-001", claims.UserID)
	assert.Equal(t, entity.RoleCommunityHealthWorker, claims.Role)
}

func TestJWTService_ValidateAccessToken_Invalid(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{
			name: "wrong signature",
			token: func() string {
				other := &jwtService{
					accessSecret:  []byte("different-secret"),
					refreshSecret: []byte("different-secret"),
				}
				token, _, err := other.GenerateTokens("doc-001", entity.RoleFacilityDoctor)
				require.NoError(t, err)

				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_RefreshTokenNotValidAsAccess(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	_, refreshToken, err := svc.GenerateTokens("nurse-001", entity.RoleFacilityNurse)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}
