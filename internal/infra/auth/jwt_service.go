package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"outreach/config"
	"outreach/internal/domain/entity"
	"outreach/internal/domain/service"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
)

// jwtService implements TokenService with HMAC-signed JWTs
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
}

// accessClaims carries the account identity inside the access token
type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a JWT-based token service
func NewJWTService(cfg *config.Config) service.TokenService {
	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
	}
}

// GenerateTokens creates a signed access/refresh token pair for an account
func (s *jwtService) GenerateTokens(userID string, role entity.Role) (string, string, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenDuration)),
		},
	})
	accessToken, err := access.SignedString(s.accessSecret)
	if err != nil {
		return "", "", errors.WithStack(err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(refreshTokenDuration)),
	})
	refreshToken, err := refresh.SignedString(s.refreshSecret)
	if err != nil {
		return "", "", errors.WithStack(err)
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken parses and verifies an access token
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid access token")
	}

	return &service.TokenClaims{
		UserID: claims.Subject,
		Role:   entity.Role(claims.Role),
	}, nil
}

// RefreshTokenDuration returns the refresh token lifetime
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return refreshTokenDuration
}
