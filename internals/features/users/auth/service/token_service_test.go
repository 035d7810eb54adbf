package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"emoclass_backend/internals/configs"
	"emoclass_backend/internals/constants"
	userModel "emoclass_backend/internals/features/users/user/model"
)

func withJWTSecret(t *testing.T, secret string) {
	t.Helper()
	old := configs.JWTSecret
	t.Cleanup(func() { configs.JWTSecret = old })
	configs.JWTSecret = secret
}

func TestGenerateAccessTokenClaims(t *testing.T) {
	withJWTSecret(t, "test-secret")

	user := &userModel.UserModel{
		ID:       uuid.New(),
		FullName: "Bu Ani",
		Role:     constants.RoleTeacher,
	}
	tokenString, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("token tidak valid: %v", err)
	}
	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["role"] != constants.RoleTeacher {
		t.Errorf("role = %v", claims["role"])
	}
	if claims["user_name"] != "Bu Ani" {
		t.Errorf("user_name = %v", claims["user_name"])
	}
}

func TestGenerateAccessTokenRequiresSecret(t *testing.T) {
	withJWTSecret(t, "")
	if _, err := GenerateAccessToken(&userModel.UserModel{ID: uuid.New()}); err == nil {
		t.Error("tanpa secret harus error")
	}
}

func TestTokenExpiry(t *testing.T) {
	withJWTSecret(t, "test-secret")

	tokenString, err := GenerateAccessToken(&userModel.UserModel{ID: uuid.New()})
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	exp := TokenExpiry(tokenString)
	want := time.Now().Add(AccessTokenTTL)
	if diff := exp.Sub(want); diff > time.Minute || diff < -time.Minute {
		t.Errorf("exp = %v, want sekitar %v", exp, want)
	}
}

func TestTokenExpiryGarbageFallsBack(t *testing.T) {
	withJWTSecret(t, "test-secret")
	exp := TokenExpiry("bukan.token.jwt")
	if exp.Before(time.Now()) {
		t.Errorf("fallback expiry harus di masa depan, got %v", exp)
	}
}
