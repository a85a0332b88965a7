package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminProductHandler serves the admin-only product management endpoints.
// Writes arrive as multipart forms so an image file can ride along with the
// product fields.
type AdminProductHandler struct {
	uc           usecase.CatalogUsecase
	logger       *slog.Logger
	maxImageSize int64
}

// NewAdminProductHandler is the constructor for AdminProductHandler, injected by Fx.
func NewAdminProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger, cfg *config.Config) *AdminProductHandler {
	maxImageSize := int64(5 << 20)
	if cfg != nil && cfg.Upload != nil && cfg.Upload.MaxImageSizeBytes > 0 {
		maxImageSize = cfg.Upload.MaxImageSizeBytes
	}

	return &AdminProductHandler{
		uc:           uc,
		logger:       logger,
		maxImageSize: maxImageSize,
	}
}

// CreateProduct handles the admin product creation request.
func (h *AdminProductHandler) CreateProduct(c echo.Context) error {
	input, errResp := h.bindProductForm(c)
	if errResp != nil {
		return errResp
	}

	output, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderSaveOutput(c, http.StatusCreated, output, "Product created successfully")
}

// UpdateProduct handles the admin product update request.
func (h *AdminProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	input, errResp := h.bindProductForm(c)
	if errResp != nil {
		return errResp
	}

	output, err := h.uc.UpdateProduct(c.Request().Context(), productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderSaveOutput(c, http.StatusOK, output, "Product updated successfully")
}

// DeleteProduct handles the admin product deletion request.
func (h *AdminProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// bindProductForm reads the multipart product fields plus the optional image
// file. The second return value is a ready-to-return error response.
func (h *AdminProductHandler) bindProductForm(c echo.Context) (*usecase.SaveProductInput, error) {
	input := &usecase.SaveProductInput{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Price:       strings.TrimSpace(c.FormValue("price")),
		Category:    strings.TrimSpace(c.FormValue("category")),
	}

	fileHeader, err := c.FormFile("image")
	if err == nil {
		image, errResp := h.readImage(c, fileHeader)
		if errResp != nil {
			return nil, errResp
		}
		input.Image = image
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}

	return input, nil
}

func (h *AdminProductHandler) readImage(c echo.Context, fileHeader *multipart.FileHeader) (*usecase.ImageUpload, error) {
	if fileHeader.Size > h.maxImageSize {
		return nil, response.BadRequest(c, "IMAGE_TOO_LARGE", "Image exceeds the maximum allowed size")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, response.BadRequest(c, "UNSUPPORTED_IMAGE_TYPE", "Only image uploads are accepted")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Failed to read image upload")
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Failed to read image upload")
	}
	if int64(len(payload)) > h.maxImageSize {
		return nil, response.BadRequest(c, "IMAGE_TOO_LARGE", "Image exceeds the maximum allowed size")
	}

	return &usecase.ImageUpload{
		Payload:     payload,
		ContentType: contentType,
		Filename:    fileHeader.Filename,
	}, nil
}

func (h *AdminProductHandler) renderSaveOutput(c echo.Context, statusCode int, output *usecase.SaveProductOutput, message string) error {
	data := map[string]any{
		"product": newProductView(output.Product),
	}
	if output.Warning != "" {
		data["warning"] = output.Warning
	}

	return response.Success(c, statusCode, data, message)
}
