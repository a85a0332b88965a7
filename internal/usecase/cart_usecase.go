package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is the rendered state of a user's cart.
type CartView struct {
	Lines []*entity.CartLine
	// Total is the sum of live price x quantity over all lines, formatted to
	// two decimals (an empty cart yields "0.00").
	Total string
}

// AddToCartOutput reports the display name of the product that was added, for
// confirmation messaging.
type AddToCartOutput struct {
	ProductName string
}

// CheckoutOutput reports how many cart rows were cleared. AlreadyEmpty marks
// the informational nothing-to-do outcome, which is not an error.
type CheckoutOutput struct {
	ItemsCleared int64
	AlreadyEmpty bool
}

// CartUsecase is the cart engine: it owns every mutation of cart items and the
// checkout transition. The authenticated user ID is threaded in explicitly on
// each call; no ambient identity state exists below the HTTP boundary.
type CartUsecase interface {
	// ViewCart returns the cart lines newest-first with the recomputed total.
	ViewCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddToCart adds quantity of a product, incrementing the existing line
	// for the (user, product) pair when one exists.
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*AddToCartOutput, error)

	// UpdateQuantity overwrites a cart item's quantity. The item must belong
	// to userID.
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error

	// RemoveFromCart deletes a cart item owned by userID.
	RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error

	// Checkout clears the user's cart in one logical operation.
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutOutput, error)
}
