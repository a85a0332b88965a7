package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the authenticated cart endpoints.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  *int   `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ViewCart returns the caller's cart lines and total.
func (h *CartHandler) ViewCart(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	view, err := h.uc.ViewCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(view), "Cart retrieved successfully")
}

// AddToCart adds a product to the caller's cart. Quantity defaults to 1 when
// the field is omitted.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req *addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid add to cart input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	output, err := h.uc.AddToCart(c.Request().Context(), userID, productID, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"product_name": output.ProductName,
	}, output.ProductName+" added to cart")
}

// UpdateQuantity overwrites a cart item's quantity.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item ID format")
	}

	var req *updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), userID, itemID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart updated successfully")
}

// RemoveFromCart deletes a cart item owned by the caller.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item ID format")
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}

// Checkout clears the caller's cart. An already-empty cart is reported as an
// informational outcome, not an error.
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.Checkout(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Checkout complete. Thank you for your purchase!"
	if output.AlreadyEmpty {
		message = "Your cart is already empty"
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items_cleared": output.ItemsCleared,
		"already_empty": output.AlreadyEmpty,
	}, message)
}
