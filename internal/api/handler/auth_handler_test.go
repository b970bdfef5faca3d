package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopsphere/user-system/internal/core/domain"
)

type stubUserService struct {
	registerFn     func(ctx context.Context, username, password, fullName string) (*domain.Identity, error)
	authenticateFn func(ctx context.Context, username, password string) (*domain.Identity, error)
	infoFn         func(ctx context.Context, id string) (*domain.IdentityInfo, error)
}

func (s *stubUserService) Register(ctx context.Context, username, password, fullName string) (*domain.Identity, error) {
	return s.registerFn(ctx, username, password, fullName)
}

func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (*domain.Identity, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubUserService) GetIdentityInfo(ctx context.Context, id string) (*domain.IdentityInfo, error) {
	return s.infoFn(ctx, id)
}

type stubIssuer struct {
	token string
	err   error
}

func (s *stubIssuer) Issue(_ *domain.Identity) (string, error) {
	return s.token, s.err
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, password, fullName string) (*domain.Identity, error) {
			if username != "alice@example.com" || password != "Secret123" || fullName != "Alice A" {
				t.Fatalf("unexpected args: %s %s", username, fullName)
			}
			return &domain.Identity{ID: "id-1", Username: username, FullName: fullName, Role: domain.RoleUser, PasswordVerifier: "v"}, nil
		},
	}
	h := NewAuthHandler(stub, &stubIssuer{token: "tok"})

	body := strings.NewReader(`{"username":"alice@example.com","password":"Secret123","full_name":"Alice A"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice@example.com" || user["role"] != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_verifier"]; leaked {
		t.Fatal("verifier leaked in response")
	}
}

// Domain errors pass through untouched; the central error handler owns the
// HTTP mapping.
func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, password, fullName string) (*domain.Identity, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	h := NewAuthHandler(stub, &stubIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"bob@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailed(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, password, fullName string) (*domain.Identity, error) {
			return nil, domain.NewValidationError("username must be at least 6 characters long and contain '@'")
		},
	}
	h := NewAuthHandler(stub, &stubIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"bob"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, username, password, fullName string) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		authenticateFn: func(ctx context.Context, username, password string) (*domain.Identity, error) {
			return &domain.Identity{ID: "id-1", Username: username, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, &stubIssuer{token: "signed-token"})

	body := strings.NewReader(`{"username":"alice@example.com","password":"Secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		authenticateFn: func(ctx context.Context, username, password string) (*domain.Identity, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, &stubIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ghost@example.com","password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
