package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog listing. Zero values impose no constraint;
// both filters combine with logical AND when set.
type ProductFilter struct {
	// Search matches case-insensitively as a substring of name OR description.
	Search string
	// Category matches exactly.
	Category string
}

// ProductRepository defines the operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns products matching the filter, newest-created-first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// DistinctCategories returns the distinct set of non-empty categories
	// across the full catalog, independent of any filter.
	DistinctCategories(ctx context.Context) ([]string, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID. Cart items referencing it are removed
	// by the store's cascade rule.
	Delete(ctx context.Context, id uuid.UUID) error
}
