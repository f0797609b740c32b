// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler    *handler.ShopHandler
	ProductHandler *handler.ProductHandler
	AdminHandler   *handler.AdminHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler    *handler.ShopHandler
	productHandler *handler.ProductHandler
	adminHandler   *handler.AdminHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:    params.ShopHandler,
		productHandler: params.ProductHandler,
		adminHandler:   params.AdminHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public storefront routes
	e.GET("/storefront", r.shopHandler.Storefront)

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.shopHandler.ListProducts)
		productGroup.GET("/featured", r.shopHandler.FeaturedProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/qrcode", r.productHandler.GetProductQR)
	}

	// Admin routes that require the operator token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/settings", r.adminHandler.GetSettings)
		adminGroup.PUT("/settings", r.adminHandler.UpdateSettings)

		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.POST("/products/:id/toggle-stock", r.adminHandler.ToggleStock)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)

		adminGroup.GET("/reviews", r.adminHandler.ListReviews)
		adminGroup.POST("/reviews", r.adminHandler.CreateReview)
		adminGroup.POST("/reviews/:id/toggle-verified", r.adminHandler.ToggleVerified)
		adminGroup.DELETE("/reviews/:id", r.adminHandler.DeleteReview)

		adminGroup.GET("/export/:collection", r.adminHandler.Export)
		adminGroup.POST("/reset", r.adminHandler.Reset)
	}
}
