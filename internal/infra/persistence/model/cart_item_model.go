package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. The composite unique index on
// (user_id, product_id) backs the at-most-one-item-per-pair invariant and
// guards the insert-or-increment upsert.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int       `gorm:"not null;default:1;check:quantity >= 1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
