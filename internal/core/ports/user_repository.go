package ports

import (
	"context"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// UserRepository is the credential store: the durable, uniqueness-enforcing
// mapping from username to identity record.
//
// Insert must be atomic with respect to the uniqueness check: when two
// concurrent inserts race on the same username, exactly one succeeds and the
// others return domain.ErrUsernameTaken. The store, not the caller, owns
// that invariant.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, identity *domain.Identity) error
}
