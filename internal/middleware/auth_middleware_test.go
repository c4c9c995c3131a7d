package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/pkg/auth"
)

func newTestAuth(t *testing.T) (*AuthMiddleware, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, userID int64, role models.RoleName) string {
	t.Helper()
	user := &models.User{ID: userID, Name: "Test User"}
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user, role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return accessToken
}

func protectedRouter(authMiddleware *AuthMiddleware, allowed ...models.RoleName) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("", authMiddleware.JWTAuth())
	if len(allowed) > 0 {
		group.Use(authMiddleware.RoleRequired(allowed...))
	}
	group.GET("/protected", func(c *gin.Context) {
		id, _ := CallerID(c)
		role, _ := CallerRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "role": role})
	})
	return router
}

func request(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	authMiddleware, jwtService := newTestAuth(t)
	router := protectedRouter(authMiddleware)

	token := tokenFor(t, jwtService, 7, models.RoleFaculty)
	rec := request(t, router, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	authMiddleware, _ := newTestAuth(t)
	router := protectedRouter(authMiddleware)

	rec := request(t, router, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	authMiddleware, _ := newTestAuth(t)
	router := protectedRouter(authMiddleware)

	rec := request(t, router, "Bearer not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthRejectsForeignSecret(t *testing.T) {
	authMiddleware, _ := newTestAuth(t)
	router := protectedRouter(authMiddleware)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "other-secret",
		AccessTokenExp: time.Hour,
	})
	token := tokenFor(t, other, 7, models.RoleFaculty)
	rec := request(t, router, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	authMiddleware, jwtService := newTestAuth(t)
	router := protectedRouter(authMiddleware, models.RoleAdmin, models.RoleFaculty)

	cases := []struct {
		role models.RoleName
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleFaculty, http.StatusOK},
		{models.RoleStudent, http.StatusForbidden},
	}
	for _, c := range cases {
		t.Run(string(c.role), func(t *testing.T) {
			token := tokenFor(t, jwtService, 7, c.role)
			rec := request(t, router, "Bearer "+token)
			if rec.Code != c.want {
				t.Errorf("status = %d, want %d", rec.Code, c.want)
			}
		})
	}
}
