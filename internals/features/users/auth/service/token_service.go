package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"emoclass_backend/internals/configs"
	userModel "emoclass_backend/internals/features/users/user/model"
)

const AccessTokenTTL = 24 * time.Hour

// GenerateAccessToken membuat JWT HS256 dengan klaim sub, role, user_name.
func GenerateAccessToken(u *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       u.ID.String(),
		"role":      u.Role,
		"user_name": u.FullName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// TokenExpiry membaca exp dari token yang sudah ditandatangani (untuk blacklist).
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().Add(AccessTokenTTL)
	}
	if expFloat, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(expFloat), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
