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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler exposes the in-memory mutation engine of the admin surface.
// Nothing here persists; the export endpoint hands the operator a file that
// must be redeployed by hand.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a
// product. The same required set applies to both: name, price, material,
// color, size and at least one image URL.
type ProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Price         int      `json:"price" validate:"min=0"`
	OriginalPrice *int     `json:"originalPrice"`
	Material      string   `json:"material" validate:"required"`
	Color         string   `json:"color" validate:"required"`
	Size          string   `json:"size" validate:"required"`
	Description   string   `json:"description"`
	Images        []string `json:"images" validate:"required,min=1,dive,required"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	Category      string   `json:"category"`
}

// ReviewRequest represents the request body for creating a review
type ReviewRequest struct {
	Name      string `json:"name" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
	Verified  bool   `json:"verified"`
	ProductID int    `json:"productId" validate:"required"`
}

// SettingsRequest represents the request body for updating settings. Omitted
// fields keep their current value.
type SettingsRequest struct {
	BrandName     *string `json:"brandName"`
	Tagline       *string `json:"tagline"`
	WhatsApp      *string `json:"whatsapp"`
	MeeshoShopURL *string `json:"meeshoShopUrl"`
	Description   *string `json:"description"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	Instagram     *string `json:"instagram"`
	Facebook      *string `json:"facebook"`
}

// GetSettings handles the settings form view: the current values plus the
// static field declaration the form is built from.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, fields, err := h.adminUC.Settings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"settings": settings,
		"fields":   fields,
	}, "Settings retrieved successfully")
}

// UpdateSettings handles the settings form submission.
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	settings, err := h.adminUC.UpdateSettings(c.Request().Context(), usecase.SettingsInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings saved, export and replace the data file to persist")
}

// ListProducts handles the admin product list.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUC.Products(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct handles the add-product form.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, products, err := h.adminUC.CreateProduct(c.Request().Context(), productInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"created":  created,
		"products": products,
	}, "Product added successfully")
}

// UpdateProduct handles the edit-product form. An unknown id is a silent
// no-op and still returns the current collection.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	products, err := h.adminUC.UpdateProduct(c.Request().Context(), id, productInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Product updated successfully")
}

// ToggleStock handles the in-stock flip.
func (h *AdminHandler) ToggleStock(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	products, err := h.adminUC.ToggleStock(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Product stock toggled")
}

// DeleteProduct handles product removal. The confirm query parameter is the
// operator confirmation step and must be true.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	confirm, _ := strconv.ParseBool(c.QueryParam("confirm"))

	products, err := h.adminUC.DeleteProduct(c.Request().Context(), id, confirm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Product deleted successfully")
}

// ListReviews handles the admin review list.
func (h *AdminHandler) ListReviews(c echo.Context) error {
	reviews, err := h.adminUC.Reviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// CreateReview handles the add-review form.
func (h *AdminHandler) CreateReview(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, reviews, err := h.adminUC.CreateReview(c.Request().Context(), usecase.ReviewInput{
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Verified:  req.Verified,
		ProductID: req.ProductID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"created": created,
		"reviews": reviews,
	}, "Review added successfully")
}

// ToggleVerified handles the verified flip.
func (h *AdminHandler) ToggleVerified(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	reviews, err := h.adminUC.ToggleVerified(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Review verified flag toggled")
}

// DeleteReview handles review removal after confirmation.
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	confirm, _ := strconv.ParseBool(c.QueryParam("confirm"))

	reviews, err := h.adminUC.DeleteReview(c.Request().Context(), id, confirm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Review deleted successfully")
}

// Export streams the named collection as a downloadable JSON file, the sole
// persistence mechanism of the admin surface.
func (h *AdminHandler) Export(c echo.Context) error {
	artifact, err := h.adminUC.Export(c.Request().Context(), c.Param("collection"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+artifact.Filename+`"`)

	return c.Blob(http.StatusOK, artifact.ContentType, artifact.Data)
}

// Reset discards the session's edits, like reloading the admin page.
func (h *AdminHandler) Reset(c echo.Context) error {
	if err := h.adminUC.Reset(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin session reset")
}

func productInput(req ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Material:      req.Material,
		Color:         req.Color,
		Size:          req.Size,
		Description:   req.Description,
		Images:        req.Images,
		InStock:       req.InStock,
		Featured:      req.Featured,
		Category:      req.Category,
	}
}
