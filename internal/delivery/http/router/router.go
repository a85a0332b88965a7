// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	AdminProductHandler *handler.AdminProductHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	catalogHandler      *handler.CatalogHandler
	cartHandler         *handler.CartHandler
	adminProductHandler *handler.AdminProductHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		adminProductHandler: params.AdminProductHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public catalog routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/products/:id/image-url", r.catalogHandler.ProductImageURL)

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		cartGroup.GET("", r.cartHandler.ViewCart)
		cartGroup.POST("/items", r.cartHandler.AddToCart)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveFromCart)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.POST("/products", r.adminProductHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminProductHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminProductHandler.DeleteProduct)
	}
}
