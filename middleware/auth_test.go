package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, role string, expiresIn time.Duration) string {
	t.Helper()

	claims := Claims{
		UserID: 7,
		Email:  "reviewer@university.edu",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newAuthTestRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})

	router.GET("/protected", handlers...)
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthTestRouter()

	token := signTestToken(t, "test-secret", "REVIEWER", time.Hour)
	rec := get(router, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthTestRouter()

	if rec := get(router, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthTestRouter()

	token := signTestToken(t, "test-secret", "REVIEWER", time.Hour)
	if rec := get(router, token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthTestRouter()

	token := signTestToken(t, "test-secret", "REVIEWER", -time.Hour)
	if rec := get(router, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthTestRouter()

	token := signTestToken(t, "other-secret", "REVIEWER", time.Hour)
	if rec := get(router, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthTestRouter("REVIEWER", "ADMIN")

	token := signTestToken(t, "test-secret", "REVIEWER", time.Hour)
	if rec := get(router, "Bearer "+token); rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthTestRouter("ADMIN")

	token := signTestToken(t, "test-secret", "STUDENT", time.Hour)
	if rec := get(router, "Bearer "+token); rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusForbidden)
	}
}
