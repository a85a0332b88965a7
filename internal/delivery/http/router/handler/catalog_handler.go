package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public product browsing endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the catalog listing request with optional search and
// category filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	output, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products":   newProductViews(output.Products),
		"categories": output.Categories,
		"search":     input.Search,
		"category":   input.Category,
	}, "Products retrieved successfully")
}

// GetProduct handles the single product detail request.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product retrieved successfully")
}

// ProductImageURL returns a short-lived signed link for the product's image,
// for deployments that keep the image bucket private.
func (h *CatalogHandler) ProductImageURL(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	url, err := h.uc.ProductImageURL(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"url": url,
	}, "Image URL issued successfully")
}
