package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ProductHandler serves the product detail page and its QR code.
type ProductHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// GetProduct handles the product detail view. A missing or malformed id is a
// not-found condition with a navigation affordance, never a hard failure.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}

	detail, err := h.shopUC.ProductDetail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Product retrieved successfully")
}

// GetProductQR handles the WhatsApp order QR code for a product.
func (h *ProductHandler) GetProductQR(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}

	png, err := h.shopUC.ProductQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ProductHandler) notFound(c echo.Context) error {
	return response.NotFound(c, "PRODUCT_NOT_FOUND", "The product you're looking for could not be found")
}
