package ports

import (
	"context"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// UserService exposes the credential-issuance use cases to any transport.
type UserService interface {
	// Register creates a new identity with role "User". Returns
	// domain.ErrUsernameTaken when the username exists, or a
	// *domain.ValidationError when the credentials are malformed.
	Register(ctx context.Context, username, password, fullName string) (*domain.Identity, error)

	// Authenticate verifies a credential pair. A missing user and a wrong
	// password both yield domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.Identity, error)

	// GetIdentityInfo returns the public projection of an identity,
	// or domain.ErrUserNotFound.
	GetIdentityInfo(ctx context.Context, id string) (*domain.IdentityInfo, error)
}

// TokenIssuer produces a signed, expiring token carrying identity claims.
// Issuance is a pure computation over the signing config and the clock.
type TokenIssuer interface {
	Issue(identity *domain.Identity) (string, error)
}
