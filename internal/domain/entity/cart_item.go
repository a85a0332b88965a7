package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CartItem binds a (user, product) pair to a quantity. At most one item per
// pair exists at any time; the pair is the item's real identity and the row ID
// only exists for addressing it over the wire.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int // Always >= 1.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine is a cart item joined with a snapshot of its product, as presented
// to the user.
type CartLine struct {
	Item    *CartItem
	Product *Product
}

// Subtotal returns price x quantity for this line, rounded to two decimals.
func (l *CartLine) Subtotal() float64 {
	return RoundPrice(l.Product.Price * float64(l.Item.Quantity))
}

// Cart is the view of a user's cart: lines newest-first plus the running total.
type Cart struct {
	Lines []*CartLine
	Total float64
}

// NewCart assembles a cart view from lines, computing the total from live
// product prices so price changes are reflected immediately.
func NewCart(lines []*CartLine) *Cart {
	var total float64
	for _, line := range lines {
		total += line.Product.Price * float64(line.Item.Quantity)
	}

	return &Cart{
		Lines: lines,
		Total: RoundPrice(total),
	}
}

// FormatAmount renders a currency amount with exactly two decimal places,
// e.g. 0 -> "0.00".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", RoundPrice(amount))
}
