package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	imageStorage *mockSvc.MockImageStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStorage := mockSvc.NewMockImageStorage(t)

	service := NewCatalogService(CatalogServiceParams{
		Config: &config.Config{
			Storage: &config.StorageConfig{SignedURLTTL: 15 * time.Minute},
		},
		ProductRepo:  productRepo,
		ImageStorage: imageStorage,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		imageStorage: imageStorage,
	}
}

func TestCatalogService_ListProducts_TrimsFilters(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New(), Name: "Drip Kettle", Price: 39.90, Category: "kitchen"}}

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{Search: "kettle", Category: "kitchen"}).
		Return(products, nil)

	fx.productRepo.EXPECT().
		DistinctCategories(ctx).
		Return([]string{"kitchen", "stationery"}, nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Search:   "  kettle ",
		Category: " kitchen  ",
	})
	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
	assert.Equal(t, []string{"kitchen", "stationery"}, output.Categories)
}

func TestCatalogService_ListProducts_CategoriesIndependentOfFilter(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	// No product matches, yet the facet set still spans the full catalog.
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{Search: "nonexistent"}).
		Return([]*entity.Product{}, nil)

	fx.productRepo.EXPECT().
		DistinctCategories(ctx).
		Return([]string{"kitchen", "stationery"}, nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Search: "nonexistent"})
	require.NoError(t, err)
	assert.Empty(t, output.Products)
	assert.Equal(t, []string{"kitchen", "stationery"}, output.Categories)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_ProductImageURL_UsesConfiguredTTL(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget", ImageKey: "products/w.png"}, nil)

	fx.imageStorage.EXPECT().
		SignedURL(ctx, "products/w.png", 15*time.Minute).
		Return("https://bucket.example.com/products/w.png?sig=abc", nil)

	url, err := fx.service.ProductImageURL(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/products/w.png?sig=abc", url)
}

func TestCatalogService_ProductImageURL_NoImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget"}, nil)

	url, err := fx.service.ProductImageURL(ctx, productID)
	assert.Empty(t, url)
	assert.True(t, errors.Is(err, domainerrors.ErrProductImageNotFound))
}

func TestCatalogService_CreateProduct_WithoutImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "Pour Over Kit", product.Name)
			assert.InDelta(t, 24.99, product.Price, 0.001)
			assert.Equal(t, "kitchen", product.Category)
			assert.NotEqual(t, uuid.Nil, product.ID)
		}).
		Return(nil)

	output, err := fx.service.CreateProduct(ctx, &usecase.SaveProductInput{
		Name:     "  Pour Over Kit ",
		Price:    "24.99",
		Category: " kitchen ",
	})
	require.NoError(t, err)
	assert.Empty(t, output.Warning)
	assert.Equal(t, "Pour Over Kit", output.Product.Name)
}

func TestCatalogService_CreateProduct_RejectsEmptyName(t *testing.T) {
	fx := createTestCatalogService(t)

	output, err := fx.service.CreateProduct(context.Background(), &usecase.SaveProductInput{
		Name:  "   ",
		Price: "10.00",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNameRequired))
}

func TestCatalogService_CreateProduct_RejectsMalformedPrice(t *testing.T) {
	fx := createTestCatalogService(t)

	// ParseFloat accepts "NaN" and "Inf" spellings, so the non-finite cases
	// guard against a numeric that would poison every cart total.
	for _, price := range []string{"", "abc", "-1", "10,00", "NaN", "Inf", "+Inf", "-Inf", "nan", "infinity"} {
		output, err := fx.service.CreateProduct(context.Background(), &usecase.SaveProductInput{
			Name:  "Widget",
			Price: price,
		})
		assert.Nil(t, output, "price %q", price)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice), "price %q", price)
	}
}

func TestCatalogService_CreateProduct_WithImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	image := &usecase.ImageUpload{
		Payload:     []byte("fake-png"),
		ContentType: "image/png",
		Filename:    "photo.png",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	fx.imageStorage.EXPECT().
		Store(ctx, image.Payload, image.ContentType, image.Filename, mock.AnythingOfType("uuid.UUID")).
		Return(&service.StoredImage{
			URL: "https://cdn.example.com/products/x/1.png",
			Key: "products/x/1.png",
		}, nil)

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "https://cdn.example.com/products/x/1.png", product.ImageURL)
			assert.Equal(t, "products/x/1.png", product.ImageKey)
		}).
		Return(nil)

	output, err := fx.service.CreateProduct(ctx, &usecase.SaveProductInput{
		Name:  "Widget",
		Price: "5.00",
		Image: image,
	})
	require.NoError(t, err)
	assert.Empty(t, output.Warning)
	assert.Equal(t, "products/x/1.png", output.Product.ImageKey)
}

func TestCatalogService_CreateProduct_ImageUploadFailureIsWarning(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	image := &usecase.ImageUpload{Payload: []byte("x"), ContentType: "image/png", Filename: "a.png"}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	fx.imageStorage.EXPECT().
		Store(ctx, image.Payload, image.ContentType, image.Filename, mock.AnythingOfType("uuid.UUID")).
		Return(nil, errors.New("bucket unreachable"))

	// The product row stands and no image reference is persisted.
	output, err := fx.service.CreateProduct(ctx, &usecase.SaveProductInput{
		Name:  "Widget",
		Price: "5.00",
		Image: image,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Warning)
	assert.Empty(t, output.Product.ImageKey)
}

func TestCatalogService_UpdateProduct_ReplacesImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:       productID,
		Name:     "Old Name",
		Price:    9.99,
		ImageURL: "https://cdn.example.com/products/old.png",
		ImageKey: "products/old.png",
	}
	image := &usecase.ImageUpload{Payload: []byte("new"), ContentType: "image/jpeg", Filename: "new.jpg"}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(existing, nil)

	fx.imageStorage.EXPECT().
		Delete(ctx, "products/old.png").
		Return()

	fx.imageStorage.EXPECT().
		Store(ctx, image.Payload, image.ContentType, image.Filename, productID).
		Return(&service.StoredImage{
			URL: "https://cdn.example.com/products/new.jpg",
			Key: "products/new.jpg",
		}, nil)

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "New Name", product.Name)
			assert.InDelta(t, 14.50, product.Price, 0.001)
			assert.Equal(t, "products/new.jpg", product.ImageKey)
		}).
		Return(nil)

	output, err := fx.service.UpdateProduct(ctx, productID, &usecase.SaveProductInput{
		Name:  "New Name",
		Price: "14.50",
		Image: image,
	})
	require.NoError(t, err)
	assert.Empty(t, output.Warning)
	assert.Equal(t, "products/new.jpg", output.Product.ImageKey)
}

func TestCatalogService_UpdateProduct_FailedReuploadKeepsOldImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:       productID,
		Name:     "Old Name",
		Price:    9.99,
		ImageURL: "https://cdn.example.com/products/old.png",
		ImageKey: "products/old.png",
	}
	image := &usecase.ImageUpload{Payload: []byte("new"), ContentType: "image/jpeg", Filename: "new.jpg"}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(existing, nil)

	// No Delete expectation: the old blob must survive a failed replacement.
	fx.imageStorage.EXPECT().
		Store(ctx, image.Payload, image.ContentType, image.Filename, productID).
		Return(nil, errors.New("bucket unreachable"))

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "https://cdn.example.com/products/old.png", product.ImageURL)
			assert.Equal(t, "products/old.png", product.ImageKey)
		}).
		Return(nil)

	output, err := fx.service.UpdateProduct(ctx, productID, &usecase.SaveProductInput{
		Name:  "New Name",
		Price: "14.50",
		Image: image,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Warning)
	assert.Equal(t, "products/old.png", output.Product.ImageKey)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.UpdateProduct(ctx, productID, &usecase.SaveProductInput{
		Name:  "Whatever",
		Price: "1.00",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_DeleteProduct_RemovesBlobBestEffort(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget", ImageKey: "products/w.png"}, nil)

	fx.imageStorage.EXPECT().
		Delete(ctx, "products/w.png").
		Return()

	fx.productRepo.EXPECT().
		Delete(ctx, productID).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)
	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_WithoutImageSkipsBlobDelete(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget"}, nil)

	fx.productRepo.EXPECT().
		Delete(ctx, productID).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)
	require.NoError(t, err)
}
