package ports

import (
	"context"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// CartRepository is a plain key-value store for carts: get, replace, delete
// by user ID. Merging items into an existing cart is the caller's business,
// not the store's.
type CartRepository interface {
	// Get returns the stored cart, or an empty cart when none exists.
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	// Put replaces the whole cart for the user.
	Put(ctx context.Context, userID string, cart *domain.Cart) error
	// Clear removes the cart. Clearing an absent cart is not an error.
	Clear(ctx context.Context, userID string) error
}
