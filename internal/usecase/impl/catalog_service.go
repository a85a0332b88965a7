package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageUploadWarning = "Image upload failed; the product was saved without it. You can attach an image later."

// catalogService implements the CatalogUsecase interface: public browsing plus
// the admin-only product CRUD with image handling.
type catalogService struct {
	productRepo  repository.ProductRepository
	imageStorage service.ImageStorage
	signedURLTTL time.Duration
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Config       *config.Config
	ProductRepo  repository.ProductRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		imageStorage: params.ImageStorage,
		signedURLTTL: params.Config.Storage.SignedURLTTL,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the filtered catalog newest-first. The category facet
// set is always computed over the full catalog, not the filtered subset, so
// the filter UI stays stable while a filter is active.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	filter := repository.ProductFilter{
		Search:   strings.TrimSpace(input.Search),
		Category: strings.TrimSpace(input.Category),
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	categories, err := srv.productRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.ListProductsOutput{
		Products:   products,
		Categories: categories,
	}, nil
}

// GetProduct returns a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ProductImageURL issues a time-limited read link for the product's image
// blob, with the validity window taken from storage config.
func (srv *catalogService) ProductImageURL(ctx context.Context, id uuid.UUID) (string, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return "", domainerrors.ErrProductNotFound
		}

		return "", errors.Wrap(err, "failed to find product")
	}

	if !product.HasImage() {
		return "", domainerrors.ErrProductImageNotFound
	}

	url, err := srv.imageStorage.SignedURL(ctx, product.ImageKey, srv.signedURLTTL)
	if err != nil {
		srv.log(ctx).Warn("Failed to sign image URL", slog.Any("productID", id), slog.Any("error", err))

		return "", domainerrors.ErrImageStorageUnavailable
	}

	return url, nil
}

// CreateProduct persists a new product, then uploads the image (if any) so the
// blob key can be namespaced by the generated product ID. An upload failure is
// downgraded to a warning on the output; the product mutation stands.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.SaveProductInput) (*usecase.SaveProductOutput, error) {
	fields, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        fields.name,
		Description: fields.description,
		Price:       fields.price,
		Category:    fields.category,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	output := &usecase.SaveProductOutput{Product: product}

	if input.Image != nil {
		if warning := srv.attachImage(ctx, product, input.Image); warning != "" {
			output.Warning = warning
		} else if err := srv.productRepo.Update(ctx, product); err != nil {
			srv.log(ctx).Warn("Failed to persist image reference", slog.Any("productID", product.ID), slog.Any("error", err))
			output.Warning = imageUploadWarning
		}
	}

	srv.log(ctx).Info("Product created", slog.String("name", product.Name), slog.Any("productID", product.ID))

	return output, nil
}

// UpdateProduct overwrites the product's fields. A new image replaces the old
// blob; the old blob is deleted best-effort only once the replacement upload
// has succeeded, so a failed upload leaves the existing image intact.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.SaveProductInput) (*usecase.SaveProductOutput, error) {
	fields, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	product.Name = fields.name
	product.Description = fields.description
	product.Price = fields.price
	product.Category = fields.category

	output := &usecase.SaveProductOutput{Product: product}

	if input.Image != nil {
		previousKey := product.ImageKey
		if warning := srv.attachImage(ctx, product, input.Image); warning != "" {
			output.Warning = warning
		} else if previousKey != "" {
			srv.imageStorage.Delete(ctx, previousKey)
		}
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("name", product.Name), slog.Any("productID", product.ID))

	return output, nil
}

// DeleteProduct removes the product row; its cart items go with it via the
// cascade rule. A missing or undeletable blob never blocks the removal.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	if product.HasImage() {
		srv.imageStorage.Delete(ctx, product.ImageKey)
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("name", product.Name), slog.Any("productID", id))

	return nil
}

// attachImage uploads the payload and stamps the resulting url/key on the
// product. Persisting the stamped fields is the caller's job; failures are
// returned as a warning string, never as an error.
func (srv *catalogService) attachImage(ctx context.Context, product *entity.Product, image *usecase.ImageUpload) string {
	stored, err := srv.imageStorage.Store(ctx, image.Payload, image.ContentType, image.Filename, product.ID)
	if err != nil {
		srv.log(ctx).Warn("Image upload failed, product saved without image",
			slog.Any("productID", product.ID),
			slog.Any("error", err),
		)

		return imageUploadWarning
	}

	product.ImageURL = stored.URL
	product.ImageKey = stored.Key

	return ""
}

type productFields struct {
	name        string
	description string
	price       float64
	category    string
}

// validateProductInput rejects malformed admin input explicitly instead of
// coercing it, so caller bugs are not masked by silent defaults.
func validateProductInput(input *usecase.SaveProductInput) (*productFields, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrProductNameRequired
	}

	// ParseFloat accepts "NaN" and "Inf", which would otherwise slip through
	// the sign check and poison every total containing the product.
	price, err := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, domainerrors.ErrInvalidPrice.WithDetails("price must parse as a non-negative decimal")
	}

	return &productFields{
		name:        name,
		description: strings.TrimSpace(input.Description),
		price:       entity.RoundPrice(price),
		category:    strings.TrimSpace(input.Category),
	}, nil
}
