package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// DefaultTokenTTL applies when no lifetime is configured.
const DefaultTokenTTL = 60 * time.Minute

// ErrSigningConfigMissing means the signing secret or issuer is absent.
// It is only ever returned at construction time, never per request.
var ErrSigningConfigMissing = errors.New("token issuer: signing secret and issuer are required")

// IdentityClaims is the claim set embedded in issued tokens: the identity's
// username and role on top of the registered issuer/audience/expiry fields.
type IdentityClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs identity tokens with HMAC-SHA-256. It holds no state
// beyond its configuration and clock.
type JWTIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTIssuer builds an issuer from injected configuration. A missing
// secret or issuer is a startup error; a non-positive ttl falls back to
// DefaultTokenTTL.
func NewJWTIssuer(secret, issuer, audience string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" || issuer == "" {
		return nil, ErrSigningConfigMissing
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Issue returns a compact JWS carrying the identity's claims, expiring at
// issue time plus the configured lifetime.
func (j *JWTIssuer) Issue(identity *domain.Identity) (string, error) {
	now := j.now().UTC()
	claims := IdentityClaims{
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}
