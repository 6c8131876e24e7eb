package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"thesis-management-api/middleware"
	"thesis-management-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type fakeAuthRepository struct {
	usersByEmail map[string]*models.User
	nextID       int
}

func newFakeAuthRepository() *fakeAuthRepository {
	return &fakeAuthRepository{usersByEmail: make(map[string]*models.User)}
}

func (f *fakeAuthRepository) EmailExists(email string) (bool, error) {
	_, ok := f.usersByEmail[email]
	return ok, nil
}

func (f *fakeAuthRepository) CreateUser(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.usersByEmail[user.Email] = &stored
	return nil
}

func newRegisterTestRouter(t *testing.T, repo authRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	origRepo := authRepo
	authRepo = repo
	t.Cleanup(func() { authRepo = origRepo })

	router := gin.New()
	router.POST("/register", Register)
	return router
}

func postRegister(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeAuthRepository()
	router := newRegisterTestRouter(t, repo)

	body := map[string]interface{}{
		"email":     "student@university.edu",
		"password":  "secret-pass",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	}

	rec := postRegister(t, router, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first registration returned %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(repo.usersByEmail) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.usersByEmail))
	}

	// Same email again must be a validation error, not a second row
	rec = postRegister(t, router, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second registration returned %d, want %d: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "Email already exists" {
		t.Errorf("error message = %q, want %q", resp["error"], "Email already exists")
	}
	if len(repo.usersByEmail) != 1 {
		t.Errorf("expected still 1 stored user, got %d", len(repo.usersByEmail))
	}
}

func TestRegisterDefaultsToStudentRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeAuthRepository()
	router := newRegisterTestRouter(t, repo)

	rec := postRegister(t, router, map[string]interface{}{
		"email":     "new@university.edu",
		"password":  "secret-pass",
		"firstName": "Grace",
		"lastName":  "Hopper",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}

	stored := repo.usersByEmail["new@university.edu"]
	if stored == nil || stored.Role != models.RoleStudent {
		t.Fatalf("stored user = %+v, want role %q", stored, models.RoleStudent)
	}
	if stored.Password == "secret-pass" {
		t.Error("password stored in plain text, want a bcrypt hash")
	}
}

func TestGenerateTokenEmbedsUserClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{
		ID:    12,
		Email: "student@university.edu",
		Role:  models.RoleStudent,
	}

	tokenString, err := generateToken(user)
	if err != nil {
		t.Fatalf("generateToken returned error: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenString, &middleware.Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not parse as valid: %v", err)
	}

	claims, ok := token.Claims.(*middleware.Claims)
	if !ok {
		t.Fatal("unexpected claims type")
	}

	if claims.UserID != user.ID {
		t.Errorf("UserID claim = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email claim = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != user.Role {
		t.Errorf("Role claim = %q, want %q", claims.Role, user.Role)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(claims.IssuedAt.Time) {
		t.Error("token expiry is missing or before issue time")
	}
}
