package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List returns products matching the filter, newest-created-first. Search uses
// ILIKE so the substring match is case-insensitive at the store level; both
// filters AND together when present.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var productsM []model.ProductModel
	if err := query.Order("created_at DESC").Find(&productsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		products = append(products, toProductDomain(&productsM[i]))
	}

	return products, nil
}

// DistinctCategories returns the distinct non-null categories over the full
// catalog, independent of any active listing filter.
func (repo *productRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Distinct("category").
		Where("category IS NOT NULL").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list distinct categories")
	}

	return categories, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update overwrites an existing product record.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"category":    productM.Category,
			"image_url":   productM.ImageURL,
			"image_key":   productM.ImageKey,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product row. The ON DELETE CASCADE constraint on
// cart_items removes every cart line referencing it in the same statement.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    derefString(data.Category),
		ImageURL:    derefString(data.ImageURL),
		ImageKey:    derefString(data.ImageKey),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    nullableString(data.Category),
		ImageURL:    nullableString(data.ImageURL),
		ImageKey:    nullableString(data.ImageKey),
	}
}

// nullableString maps an empty string to NULL so optional columns stay null
// rather than empty.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
