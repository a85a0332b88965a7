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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindLinesByUser returns the user's cart items with product snapshots
// preloaded, newest-first.
func (repo *cartRepository) FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var itemsM []model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by user")
	}

	lines := make([]*entity.CartLine, 0, len(itemsM))
	for i := range itemsM {
		lines = append(lines, &entity.CartLine{
			Item:    toCartItemDomain(&itemsM[i]),
			Product: toProductDomain(itemsM[i].Product),
		})
	}

	return lines, nil
}

// FindItemByID retrieves a cart item by row ID regardless of owner.
func (repo *cartRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&itemM), nil
}

// Upsert inserts a cart item or increments the quantity of the existing row
// for the same (user, product) pair. ON CONFLICT against the composite unique
// index makes find-or-increment a single atomic statement, so concurrent adds
// cannot race into duplicate rows or lost increments.
func (repo *cartRepository) Upsert(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + ?", item.Quantity),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(itemM).Error; err != nil {
		// The only FK on this table points at products; a violation means the
		// product vanished between the caller's existence check and the insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

// UpdateQuantity overwrites the quantity of an existing cart item.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes a single cart item.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteByUser clears every cart row owned by the user in a single statement,
// atomic under the store's transaction guarantees, and reports the count.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}
