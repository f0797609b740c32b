package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Config *config.Config
	Logger *slog.Logger
}

// ShopHandler serves the storefront and shop-grid views.
type ShopHandler struct {
	shopUC   usecase.ShopUsecase
	priceMax int
	logger   *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC:   params.ShopUC,
		priceMax: params.Config.Catalog.PriceRangeMax,
		logger:   params.Logger,
	}
}

// Storefront handles the shared settings-derived view.
func (h *ShopHandler) Storefront(c echo.Context) error {
	view, err := h.shopUC.Storefront(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Storefront retrieved successfully")
}

// ListProducts handles the filtered, sorted shop grid. All criteria are
// optional query parameters; their absence yields the unfiltered view.
func (h *ShopHandler) ListProducts(c echo.Context) error {
	criteria := usecase.DefaultCriteria()
	criteria.PriceMax = h.priceMax

	criteria.Search = c.QueryParam("search")

	if raw := c.QueryParam("priceMin"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "priceMin must be an integer")
		}
		criteria.PriceMin = value
	}

	if raw := c.QueryParam("priceMax"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "priceMax must be an integer")
		}
		criteria.PriceMax = value
	}

	if raw := c.QueryParam("inStockOnly"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "inStockOnly must be a boolean")
		}
		criteria.InStockOnly = value
	}

	products, err := h.shopUC.ListProducts(c.Request().Context(), criteria, usecase.SortKey(c.QueryParam("sort")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// An empty result is a valid view; the client renders its own
	// "no products found" affordance.
	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// FeaturedProducts handles the home-page selection.
func (h *ShopHandler) FeaturedProducts(c echo.Context) error {
	products, err := h.shopUC.FeaturedProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Featured products retrieved successfully")
}
