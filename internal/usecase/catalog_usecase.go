package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput carries the optional catalog filters as already-parsed
// primitives from the delivery boundary.
type ListProductsInput struct {
	Search   string
	Category string
}

// ListProductsOutput returns the filtered products plus the full-catalog
// category facet set, which stays stable regardless of the active filter.
type ListProductsOutput struct {
	Products   []*entity.Product
	Categories []string
}

// ImageUpload is an in-memory image payload received from the delivery layer.
type ImageUpload struct {
	Payload     []byte
	ContentType string
	Filename    string
}

// SaveProductInput defines the admin-supplied fields for creating or updating
// a product. Price arrives as a string and is validated explicitly; malformed
// input is rejected rather than coerced.
type SaveProductInput struct {
	Name        string `validate:"required"`
	Description string
	Price       string `validate:"required"`
	Category    string
	Image       *ImageUpload
}

// SaveProductOutput reports the affected product and, when an image upload
// failed while the product mutation itself succeeded, a secondary warning.
type SaveProductOutput struct {
	Product *entity.Product
	Warning string
}

// CatalogUsecase defines catalog browsing plus the admin-only product CRUD.
type CatalogUsecase interface {
	// ListProducts returns products matching the filters, newest-first, with
	// the distinct category set for faceting.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)

	// GetProduct returns a single product or ErrProductNotFound.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ProductImageURL returns a time-limited signed link for reading the
	// product's image blob directly, for deployments where the bucket is not
	// publicly readable.
	ProductImageURL(ctx context.Context, id uuid.UUID) (string, error)

	// CreateProduct persists a new product; an optional image is uploaded
	// after the row exists so the blob key can be namespaced by product ID.
	CreateProduct(ctx context.Context, input *SaveProductInput) (*SaveProductOutput, error)

	// UpdateProduct overwrites an existing product's fields, replacing its
	// image when a new payload is supplied.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *SaveProductInput) (*SaveProductOutput, error)

	// DeleteProduct removes the product and best-effort deletes its image
	// blob. Cart items referencing it are cascade-removed.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
