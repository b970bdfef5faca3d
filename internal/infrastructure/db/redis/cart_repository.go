package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// CartRepository stores carts as JSON values keyed cart:<user_id>.
// It is a plain key-value store: whole-cart reads, whole-cart writes.
type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Get returns the stored cart, or an empty cart when none exists.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w: %w", domain.ErrStoreUnavailable, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

// Put replaces the whole cart for the user.
func (r *CartRepository) Put(ctx context.Context, userID string, cart *domain.Cart) error {
	cart.UserID = userID
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("put cart: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Clear removes the cart; clearing an absent cart is a no-op.
func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
