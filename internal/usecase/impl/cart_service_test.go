package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func testCartLine(userID uuid.UUID, price float64, quantity int, createdAt time.Time) *entity.CartLine {
	productID := uuid.New()

	return &entity.CartLine{
		Item: &entity.CartItem{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: createdAt,
		},
		Product: &entity.Product{
			ID:    productID,
			Name:  "Test Product",
			Price: price,
		},
	}
}

func TestCartService_ViewCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{}, nil)

	view, err := fx.service.ViewCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "0.00", view.Total)
}

func TestCartService_ViewCart_TotalUsesLivePrices(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	lines := []*entity.CartLine{
		testCartLine(userID, 10.00, 2, now),
		testCartLine(userID, 3.25, 3, now.Add(-time.Minute)),
	}

	fx.cartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return(lines, nil)

	view, err := fx.service.ViewCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, "29.75", view.Total)
}

func TestCartService_ViewCart_TotalReflectsUpdatedQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	line := testCartLine(userID, 10.00, 2, time.Now())

	fx.cartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{line}, nil).Once()

	view, err := fx.service.ViewCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "20.00", view.Total)

	// Same line after its quantity was raised to 5
	line.Item.Quantity = 5

	fx.cartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{line}, nil).Once()

	view, err = fx.service.ViewCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "50.00", view.Total)
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Espresso Beans", Price: 12.50}, nil)

	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			assert.Equal(t, userID, item.UserID)
			assert.Equal(t, productID, item.ProductID)
			assert.Equal(t, 2, item.Quantity)
			assert.NotEqual(t, uuid.Nil, item.ID)
		}).
		Return(nil)

	output, err := fx.service.AddToCart(ctx, userID, productID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Espresso Beans", output.ProductName)
}

func TestCartService_AddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	// No repository expectations: the guard fires before any lookup.
	for _, quantity := range []int{0, -1, -50} {
		output, err := fx.service.AddToCart(ctx, uuid.New(), uuid.New(), quantity)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	}
}

func TestCartService_AddToCart_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.AddToCart(ctx, uuid.New(), productID, 1)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddToCart_ProductDeletedDuringAdd(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	// The product exists at lookup time but is gone by the insert; the foreign
	// key surfaces the race and the caller still sees a product not-found.
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Espresso Beans", Price: 12.50}, nil)

	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(repository.ErrProductNotFound)

	output, err := fx.service.AddToCart(ctx, uuid.New(), productID, 1)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: userID, Quantity: 2}, nil)

	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, itemID, 5).
		Return(nil)

	err := fx.service.UpdateQuantity(ctx, userID, itemID, 5)
	require.NoError(t, err)
}

func TestCartService_UpdateQuantity_RejectsNonPositiveWithoutMutation(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	// The guard must fire before the item is even resolved.
	err := fx.service.UpdateQuantity(ctx, uuid.New(), uuid.New(), 0)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_UpdateQuantity_OtherUsersItemForbidden(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()
	ownerID := uuid.New()
	attackerID := uuid.New()

	fx.cartRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: ownerID, Quantity: 1}, nil)

	err := fx.service.UpdateQuantity(ctx, attackerID, itemID, 3)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemForbidden))
}

func TestCartService_UpdateQuantity_ItemNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.UpdateQuantity(ctx, uuid.New(), itemID, 3)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: userID, Quantity: 1}, nil)

	fx.cartRepo.EXPECT().
		Delete(ctx, itemID).
		Return(nil)

	err := fx.service.RemoveFromCart(ctx, userID, itemID)
	require.NoError(t, err)
}

func TestCartService_RemoveFromCart_OtherUsersItemForbidden(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: uuid.New(), Quantity: 1}, nil)

	err := fx.service.RemoveFromCart(ctx, uuid.New(), itemID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemForbidden))
}

func TestCartService_Checkout_ClearsCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		DeleteByUser(ctx, userID).
		Return(int64(3), nil)

	output, err := fx.service.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), output.ItemsCleared)
	assert.False(t, output.AlreadyEmpty)
}

func TestCartService_Checkout_AlreadyEmptyIsInformational(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		DeleteByUser(ctx, userID).
		Return(int64(0), nil)

	output, err := fx.service.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.True(t, output.AlreadyEmpty)
	assert.Equal(t, int64(0), output.ItemsCleared)
}

func TestCartService_Checkout_RepositoryError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		DeleteByUser(ctx, userID).
		Return(int64(0), errors.New("connection reset"))

	output, err := fx.service.Checkout(ctx, userID)
	assert.Nil(t, output)
	assert.Error(t, err)
}
