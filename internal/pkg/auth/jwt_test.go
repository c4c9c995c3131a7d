package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/bisplatform/bisbackend/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Name: "Test User"}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user, models.RoleFaculty)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty tokens")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Errorf("refreshExpiresIn = %d, want 86400", refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != string(models.RoleFaculty) {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleFaculty)
	}
	if claims.Name != "Test User" {
		t.Errorf("Name = %q, want Test User", claims.Name)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 1, Name: "Expired"}

	access, _, _, _, err := svc.GenerateTokenPair(user, models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := svc.ValidateToken(access); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})

	access, _, _, _, err := svc.GenerateTokenPair(&models.User{ID: 7, Name: "X"}, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := other.ValidateToken(access); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	svc := testService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken returned error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q", token)
	}

	raw, err := ExtractBearerToken("abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken returned error: %v", err)
	}
	if raw != "abc.def.ghi" {
		t.Errorf("token = %q", raw)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}
