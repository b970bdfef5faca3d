package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopsphere/user-system/internal/core/domain"
)

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:       "11111111-2222-3333-4444-555555555555",
		Username: "alice@example.com",
		FullName: "Alice A",
		Role:     domain.RoleUser,
	}
}

func parseClaims(t *testing.T, token, secret string) *IdentityClaims {
	t.Helper()
	claims := &IdentityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	return claims
}

func TestJWTIssuer_Claims(t *testing.T) {
	issuer, err := NewJWTIssuer("secret", "user-system", "shopsphere", time.Hour)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	token, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := parseClaims(t, token, "secret")
	if claims.Username != "alice@example.com" {
		t.Errorf("username claim: got %q", claims.Username)
	}
	if claims.Role != domain.RoleUser {
		t.Errorf("role claim: got %q", claims.Role)
	}
	if claims.Issuer != "user-system" {
		t.Errorf("issuer claim: got %q", claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "shopsphere" {
		t.Errorf("audience claim: got %v", claims.Audience)
	}
	if claims.Subject != testIdentity().ID {
		t.Errorf("subject claim: got %q", claims.Subject)
	}
}

func TestJWTIssuer_ExpiryEqualsIssueTimePlusLifetime(t *testing.T) {
	issuer, err := NewJWTIssuer("secret", "user-system", "shopsphere", 45*time.Minute)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}
	frozen := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return frozen }

	token, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Skip exp validation so the fixed date keeps working.
	claims := &IdentityClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithoutClaimsValidation()); err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if !claims.IssuedAt.Time.Equal(frozen) {
		t.Errorf("iat: want %v, got %v", frozen, claims.IssuedAt.Time)
	}
	want := frozen.Add(45 * time.Minute)
	if !claims.ExpiresAt.Time.Equal(want) {
		t.Errorf("exp: want %v, got %v", want, claims.ExpiresAt.Time)
	}
}

func TestJWTIssuer_DefaultLifetime(t *testing.T) {
	issuer, err := NewJWTIssuer("secret", "user-system", "shopsphere", 0)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}
	if issuer.ttl != DefaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTokenTTL, issuer.ttl)
	}
}

func TestJWTIssuer_SignedWithHS256(t *testing.T) {
	issuer, _ := NewJWTIssuer("secret", "user-system", "shopsphere", time.Hour)
	token, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parsed, err := jwt.ParseWithClaims(token, &IdentityClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("expected an HS256 token, got error %v", err)
	}

	// A different key must not verify.
	if _, err := jwt.ParseWithClaims(token, &IdentityClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	}); err == nil {
		t.Fatal("token verified with the wrong key")
	}
}

func TestNewJWTIssuer_MissingConfig(t *testing.T) {
	if _, err := NewJWTIssuer("", "user-system", "aud", time.Hour); err != ErrSigningConfigMissing {
		t.Fatalf("missing secret: expected ErrSigningConfigMissing, got %v", err)
	}
	if _, err := NewJWTIssuer("secret", "", "aud", time.Hour); err != ErrSigningConfigMissing {
		t.Fatalf("missing issuer: expected ErrSigningConfigMissing, got %v", err)
	}
}
