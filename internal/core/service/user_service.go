package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopsphere/user-system/internal/core/domain"
	"github.com/shopsphere/user-system/internal/core/password"
	"github.com/shopsphere/user-system/internal/core/ports"
)

// UserService implements registration, authentication, and identity lookup.
type UserService struct {
	repo   ports.UserRepository
	hasher password.Hasher
	policy *CredentialPolicy
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher password.Hasher, policy *CredentialPolicy, logger zerolog.Logger) *UserService {
	if policy == nil {
		policy = NewCredentialPolicy()
	}
	return &UserService{repo: repo, hasher: hasher, policy: policy, logger: logger}
}

// Register creates a new identity with role "User".
//
// The duplicate check runs before format validation: a taken username is
// reported as taken even when the credentials are also malformed. The store's
// unique index remains the source of truth, so a racing registration that
// slips past the check still fails at Insert with ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password, fullName string) (*domain.Identity, error) {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, domain.ErrUsernameTaken
	}

	if err := s.policy.Validate(username, password); err != nil {
		return nil, err
	}

	verifier, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	identity := &domain.Identity{
		ID:               uuid.NewString(),
		Username:         username,
		PasswordVerifier: verifier,
		FullName:         fullName,
		Role:             domain.RoleUser,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.insertWithRetry(ctx, identity); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", identity.ID).Str("username", username).Msg("user registered")
	return identity, nil
}

// insertWithRetry retries a transient store failure once. The unique index
// on username makes the retry idempotent: if the first attempt actually
// landed, the second returns ErrUsernameTaken for the same identity, which
// is treated as success.
func (s *UserService) insertWithRetry(ctx context.Context, identity *domain.Identity) error {
	err := s.repo.Insert(ctx, identity)
	if err == nil || !errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}

	s.logger.Warn().Err(err).Str("username", identity.Username).Msg("insert failed, retrying once")

	retryErr := s.repo.Insert(ctx, identity)
	if errors.Is(retryErr, domain.ErrUsernameTaken) {
		// First attempt persisted before the error surfaced.
		stored, findErr := s.repo.FindByUsername(ctx, identity.Username)
		if findErr == nil && stored.ID == identity.ID {
			return nil
		}
	}
	return retryErr
}

// Authenticate verifies a credential pair against the store. A missing user
// and a mismatched password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.Identity, error) {
	identity, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Verify(password, identity.PasswordVerifier) {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("user authenticated")
	return identity, nil
}

// GetIdentityInfo returns the public projection of a stored identity.
func (s *UserService) GetIdentityInfo(ctx context.Context, id string) (*domain.IdentityInfo, error) {
	identity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return identity.Info(), nil
}
