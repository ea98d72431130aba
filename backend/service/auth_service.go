package service

import (
	"context"
	"errors"
	"time"

	"packlist/backend/common"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenDuration  = 24 * time.Hour
	RefreshTokenDuration = 7 * 24 * time.Hour

	tokenIssuer = "packlist"
)

// Claims is the payload of both access and refresh tokens. UserID is the
// stable identity every ownership comparison uses.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func generateTokenWithSecret(userID int64, username string, duration time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateToken(userID int64, username string) (string, error) {
	return generateTokenWithSecret(userID, username, AccessTokenDuration, common.JWTSecret)
}

func GenerateRefreshToken(userID int64, username string) (string, error) {
	return generateTokenWithSecret(userID, username, RefreshTokenDuration, common.JWTRefreshSecret)
}

func validateTokenWithSecret(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func ValidateToken(tokenString string) (*Claims, error) {
	return validateTokenWithSecret(tokenString, common.JWTSecret)
}

func ValidateRefreshToken(tokenString string) (*Claims, error) {
	return validateTokenWithSecret(tokenString, common.JWTRefreshSecret)
}

// BlacklistToken invalidates an access token until its natural expiry.
// Without redis logout is best-effort: the client drops the token.
func BlacklistToken(ctx context.Context, tokenString string) error {
	if !common.RedisEnabled {
		return nil
	}
	claims, err := ValidateToken(tokenString)
	if err != nil {
		// Already invalid, nothing to blacklist.
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return common.RDB.Set(ctx, "jwt:blacklist:"+tokenString, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether logout has invalidated the token.
func IsTokenBlacklisted(ctx context.Context, tokenString string) bool {
	if !common.RedisEnabled {
		return false
	}
	exists, _ := common.RDB.Exists(ctx, "jwt:blacklist:"+tokenString).Result()
	return exists > 0
}
