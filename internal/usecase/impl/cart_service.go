// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ViewCart returns the cart lines newest-first plus the total recomputed from
// live product prices, so a price change shows up in an open cart immediately.
func (srv *cartService) ViewCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	lines, err := srv.cartRepo.FindLinesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart lines")
	}

	cart := entity.NewCart(lines)

	return &usecase.CartView{
		Lines: cart.Lines,
		Total: entity.FormatAmount(cart.Total),
	}, nil
}

// AddToCart adds quantity of a product to the user's cart. The insert and the
// repeat-add increment are a single upsert guarded by the (user, product)
// uniqueness constraint, so concurrent adds cannot produce duplicate rows or
// lose an increment.
func (srv *cartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.AddToCartOutput, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := srv.cartRepo.Upsert(ctx, item); err != nil {
		// The product can be deleted between the lookup above and the insert;
		// the upsert surfaces that race as a not-found, not a storage fault.
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to upsert cart item")
	}

	srv.log(ctx).Info("Item added to cart",
		slog.Any("userID", userID),
		slog.Any("productID", productID),
		slog.Int("quantity", quantity),
	)

	return &usecase.AddToCartOutput{ProductName: product.Name}, nil
}

// UpdateQuantity overwrites a cart item's quantity after checking ownership.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	if err := srv.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return errors.Wrap(err, "failed to update cart item quantity")
	}

	srv.log(ctx).Info("Cart item updated", slog.Any("itemID", itemID), slog.Int("quantity", quantity))

	return nil
}

// RemoveFromCart deletes a single cart item after checking ownership.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := srv.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	srv.log(ctx).Info("Cart item removed", slog.Any("itemID", itemID), slog.Any("userID", userID))

	return nil
}

// Checkout clears every cart row owned by the user in one statement. A second
// checkout in a row reports the already-empty outcome rather than an error.
func (srv *cartService) Checkout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutOutput, error) {
	cleared, err := srv.cartRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	if cleared == 0 {
		return &usecase.CheckoutOutput{AlreadyEmpty: true}, nil
	}

	srv.log(ctx).Info("Checkout completed", slog.Any("userID", userID), slog.Int64("itemsCleared", cleared))

	return &usecase.CheckoutOutput{ItemsCleared: cleared}, nil
}

// ownedItem resolves itemID and enforces that it belongs to userID. A row that
// exists but belongs to someone else is Forbidden, never silently NotFound, so
// cross-user tampering is visible in the taxonomy.
func (srv *cartService) ownedItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := srv.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to find cart item")
	}

	if item.UserID != userID {
		return domainerrors.ErrCartItemForbidden
	}

	return nil
}
