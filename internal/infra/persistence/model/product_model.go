package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Category is nullable so that the
// distinct-category facet query can skip uncategorized rows.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Category    *string   `gorm:"type:varchar(100)"`
	ImageURL    *string   `gorm:"type:varchar(500)"`
	ImageKey    *string   `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CartItems []CartItemModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
