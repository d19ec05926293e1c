// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"servicehub/config"
	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/router/handler"
	"servicehub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	ReviewHandler  *handler.ReviewHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	reviewHandler  *handler.ReviewHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		reviewHandler:  params.ReviewHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	identify := r.authMiddleware.Identify
	admin := []echo.MiddlewareFunc{r.authMiddleware.Identify, r.authMiddleware.RequireAdmin}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.GET("/me", r.authHandler.Me, identify)
	}

	// Catalog routes; /export is registered before /:id so the static segment wins.
	servicesGroup := api.Group("/services")
	{
		servicesGroup.GET("", r.catalogHandler.ListServices)
		servicesGroup.GET("/export", r.catalogHandler.ExportServices, admin...)
		servicesGroup.GET("/:id", r.catalogHandler.GetService)
		servicesGroup.POST("", r.catalogHandler.CreateService, admin...)
		servicesGroup.PUT("/:id", r.catalogHandler.UpdateService, admin...)
		servicesGroup.DELETE("/:id", r.catalogHandler.DeleteService, admin...)

		servicesGroup.GET("/:id/reviews", r.reviewHandler.ListServiceReviews)
		servicesGroup.POST("/:id/reviews", r.reviewHandler.CreateReview)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
		categoriesGroup.GET("/:id", r.catalogHandler.GetCategory)
		categoriesGroup.POST("", r.catalogHandler.CreateCategory, admin...)
		categoriesGroup.PUT("/:id", r.catalogHandler.UpdateCategory, admin...)
		categoriesGroup.DELETE("/:id", r.catalogHandler.DeleteCategory, admin...)
	}

	// Review moderation (admin)
	reviewsGroup := api.Group("/reviews", admin...)
	{
		reviewsGroup.GET("/all", r.reviewHandler.ListAllReviews)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.PUT("/profile", r.userHandler.UpdateProfile)
		usersGroup.GET("/:userId/reviews", r.reviewHandler.ListUserReviews)
		usersGroup.GET("", r.userHandler.ListUsers, admin...)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, admin...)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("/:userId", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddToCart)
		cartGroup.DELETE("/remove", r.cartHandler.RemoveFromCart)
		cartGroup.DELETE("/clear", r.cartHandler.ClearCart)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("/create", r.orderHandler.CreateOrder)
		ordersGroup.GET("/:userId", r.orderHandler.ListOrders)
		ordersGroup.GET("/:userId/:orderId/receipt", r.orderHandler.GetReceipt)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}
}
