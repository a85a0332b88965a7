package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations for cart persistence. The cart engine
// is the sole writer of cart_items rows.
type CartRepository interface {
	// FindLinesByUser returns the user's cart items joined with their product
	// snapshots, newest-first.
	FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// FindItemByID retrieves a cart item by its row ID, regardless of owner.
	// Ownership is checked by the caller so that cross-user access can be
	// distinguished from absence.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// Upsert atomically inserts a cart item or, when one already exists for
	// the (user, product) pair, increments its quantity by item.Quantity.
	// The uniqueness invariant on (user_id, product_id) guards the operation.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity overwrites the quantity of an existing item.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// Delete removes a single cart item by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every cart item owned by the user in one statement
	// and reports how many rows were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
