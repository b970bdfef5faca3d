package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	testSecret   = "secret"
	testIssuer   = "user-system"
	testAudience = "shopsphere"
)

func signTestToken(t *testing.T, mutate func(jwt.MapClaims)) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": "alice@example.com",
		"role":     "User",
		"sub":      "user-1",
		"iss":      testIssuer,
		"aud":      testAudience,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	if mutate != nil {
		mutate(claims)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, nil))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(testSecret, testIssuer, testAudience)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice@example.com" {
			t.Fatalf("username not set")
		}
		if c.Get("role") != "User" {
			t.Fatalf("role not set")
		}
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func runRejectionCase(t *testing.T, header string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testSecret, testIssuer, testAudience)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	runRejectionCase(t, "")
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	runRejectionCase(t, "Token abc")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	runRejectionCase(t, "Bearer not-a-token")
}

func TestAuthMiddleware_WrongIssuer(t *testing.T) {
	token := signTestToken(t, func(c jwt.MapClaims) { c["iss"] = "someone-else" })
	runRejectionCase(t, "Bearer "+token)
}

func TestAuthMiddleware_WrongAudience(t *testing.T) {
	token := signTestToken(t, func(c jwt.MapClaims) { c["aud"] = "other-audience" })
	runRejectionCase(t, "Bearer "+token)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signTestToken(t, func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Minute).Unix() })
	runRejectionCase(t, "Bearer "+token)
}
