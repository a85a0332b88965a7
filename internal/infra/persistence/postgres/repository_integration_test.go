package postgres

import (
	"context"
	"os"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openIntegrationDB connects to the Postgres instance named by
// STOREFRONT_TEST_DSN, migrates the schema and truncates all tables. The
// filter and cascade behavior under test lives in SQL, so mocks cannot cover
// it.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("STOREFRONT_TEST_DSN")
	if dsn == "" {
		t.Skip("Skipping Postgres test: STOREFRONT_TEST_DSN env var not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.ProductModel{}, &model.CartItemModel{}))
	require.NoError(t, db.Exec("TRUNCATE cart_items, products, users").Error)

	return db
}

func seedProduct(t *testing.T, repo repository.ProductRepository, name, description, category string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       9.99,
		Category:    category,
	}
	require.NoError(t, repo.Create(context.Background(), product))

	return product
}

func productNames(products []*entity.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	return names
}

func TestProductRepository_List_FilterMatrix_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, repo, "Ceramic Mug", "Hand glazed stoneware", "kitchen")
	seedProduct(t, repo, "Travel MUG", "Leak proof lid", "outdoors")
	seedProduct(t, repo, "Notebook", "Dot grid with a mug doodle on the cover", "stationery")
	seedProduct(t, repo, "Desk Lamp", "Warm light", "stationery")

	tests := []struct {
		name   string
		filter repository.ProductFilter
		want   []string
	}{
		{
			name:   "no filter returns everything",
			filter: repository.ProductFilter{},
			want:   []string{"Ceramic Mug", "Travel MUG", "Notebook", "Desk Lamp"},
		},
		{
			name:   "search matches name and description case-insensitively",
			filter: repository.ProductFilter{Search: "mug"},
			want:   []string{"Ceramic Mug", "Travel MUG", "Notebook"},
		},
		{
			name:   "upper-case search matches the same rows",
			filter: repository.ProductFilter{Search: "MUG"},
			want:   []string{"Ceramic Mug", "Travel MUG", "Notebook"},
		},
		{
			name:   "description-only match",
			filter: repository.ProductFilter{Search: "glazed"},
			want:   []string{"Ceramic Mug"},
		},
		{
			name:   "category alone",
			filter: repository.ProductFilter{Category: "stationery"},
			want:   []string{"Notebook", "Desk Lamp"},
		},
		{
			name:   "search and category AND together",
			filter: repository.ProductFilter{Search: "mug", Category: "kitchen"},
			want:   []string{"Ceramic Mug"},
		},
		{
			name:   "conjunction with no survivors",
			filter: repository.ProductFilter{Search: "mug", Category: "lighting"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, productNames(products))
		})
	}
}

func TestProductRepository_DistinctCategories_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewProductRepository(db)

	seedProduct(t, repo, "Ceramic Mug", "", "kitchen")
	seedProduct(t, repo, "Travel MUG", "", "kitchen")
	seedProduct(t, repo, "Notebook", "", "stationery")
	seedProduct(t, repo, "Mystery Box", "", "")

	categories, err := repo.DistinctCategories(context.Background())
	require.NoError(t, err)

	// Deduplicated, sorted, and NULL categories never show up as a facet.
	assert.Equal(t, []string{"kitchen", "stationery"}, categories)
}

func TestProductRepository_Delete_CascadesAcrossUsers_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	productRepo := NewProductRepository(db)
	cartRepo := NewCartRepository(db)
	ctx := context.Background()

	doomed := seedProduct(t, productRepo, "Ceramic Mug", "", "kitchen")
	survivorProduct := seedProduct(t, productRepo, "Notebook", "", "stationery")

	firstUser := uuid.New()
	secondUser := uuid.New()

	for _, item := range []*entity.CartItem{
		{ID: uuid.New(), UserID: firstUser, ProductID: doomed.ID, Quantity: 2},
		{ID: uuid.New(), UserID: secondUser, ProductID: doomed.ID, Quantity: 1},
		{ID: uuid.New(), UserID: firstUser, ProductID: survivorProduct.ID, Quantity: 3},
	} {
		require.NoError(t, cartRepo.Upsert(ctx, item))
	}

	require.NoError(t, productRepo.Delete(ctx, doomed.ID))

	firstLines, err := cartRepo.FindLinesByUser(ctx, firstUser)
	require.NoError(t, err)
	require.Len(t, firstLines, 1)
	assert.Equal(t, survivorProduct.ID, firstLines[0].Item.ProductID)

	secondLines, err := cartRepo.FindLinesByUser(ctx, secondUser)
	require.NoError(t, err)
	assert.Empty(t, secondLines)
}

func TestCartRepository_Upsert_IncrementsAtomically_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	productRepo := NewProductRepository(db)
	cartRepo := NewCartRepository(db)
	ctx := context.Background()

	product := seedProduct(t, productRepo, "Ceramic Mug", "", "kitchen")
	userID := uuid.New()

	first := &entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, cartRepo.Upsert(ctx, first))

	// A repeat add lands on the same row and increments in place.
	repeat := &entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: product.ID, Quantity: 3}
	require.NoError(t, cartRepo.Upsert(ctx, repeat))

	lines, err := cartRepo.FindLinesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, first.ID, lines[0].Item.ID)
	assert.Equal(t, 5, lines[0].Item.Quantity)
}

func TestCartRepository_Upsert_MissingProduct_Integration(t *testing.T) {
	db := openIntegrationDB(t)
	cartRepo := NewCartRepository(db)

	err := cartRepo.Upsert(context.Background(), &entity.CartItem{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
