// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"apparel/internal/delivery/api/middleware"
	"apparel/internal/delivery/api/router/handler"
	"apparel/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	CatalogHandler   *handler.CatalogHandler
	AddressHandler   *handler.AddressHandler
	DesignHandler    *handler.DesignHandler
	OrderHandler     *handler.OrderHandler
	DashboardHandler *handler.DashboardHandler
	DeviceHandler    *handler.DeviceHandler
	HealthHandler    *handler.HealthHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	catalogHandler   *handler.CatalogHandler
	addressHandler   *handler.AddressHandler
	designHandler    *handler.DesignHandler
	orderHandler     *handler.OrderHandler
	dashboardHandler *handler.DashboardHandler
	deviceHandler    *handler.DeviceHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		profileHandler:   params.ProfileHandler,
		catalogHandler:   params.CatalogHandler,
		addressHandler:   params.AddressHandler,
		designHandler:    params.DesignHandler,
		orderHandler:     params.OrderHandler,
		dashboardHandler: params.DashboardHandler,
		deviceHandler:    params.DeviceHandler,
		healthHandler:    params.HealthHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/otp/resend", r.authHandler.ResendOTP)
		authGroup.POST("/otp/verify", r.authHandler.VerifyOTP)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password/reset-request", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password/reset", r.authHandler.ConfirmPasswordReset)
	}

	apiV1 := e.Group("/api/v1")

	// The catalog is public.
	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
	}

	authed := apiV1.Group("", r.authMiddleware.Authenticate)

	meGroup := authed.Group("/me")
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PATCH("", r.profileHandler.UpdateProfile)
		meGroup.POST("/picture", r.profileHandler.UploadProfilePicture)
		meGroup.PATCH("/notifications", r.profileHandler.UpdateNotificationSettings)
		meGroup.POST("/password", r.authHandler.ChangePassword)
	}

	addressesGroup := authed.Group("/addresses/:kind")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.GET("/default", r.addressHandler.GetDefaultAddress)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressesGroup.POST("/:id/default", r.addressHandler.SetDefaultAddress)
	}

	designsGroup := authed.Group("/designs")
	{
		designsGroup.GET("", r.designHandler.ListDesigns)
		designsGroup.POST("", r.designHandler.CreateDesign)
		designsGroup.GET("/:id", r.designHandler.GetDesign)
		designsGroup.PUT("/:id", r.designHandler.UpdateDesign)
		designsGroup.DELETE("/:id", r.designHandler.DeleteDesign)
		designsGroup.POST("/:id/submit", r.designHandler.SubmitDesign)
		designsGroup.GET("/:id/artwork", r.designHandler.GetArtwork)
	}

	ordersGroup := authed.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("/:code", r.orderHandler.GetOrder)
		ordersGroup.POST("/:code/cancel", r.orderHandler.CancelOrder)
		ordersGroup.GET("/:code/qr", r.orderHandler.TrackingQR)
	}

	// Device management routes
	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Admin routes require the "admin" role on top of authentication.
	adminGroup := authed.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/products", r.catalogHandler.ListProducts)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.POST("/products/:id/active", r.catalogHandler.SetProductActive)
		adminGroup.GET("/products/:id/pricing-rule", r.catalogHandler.GetPricingRule)
		adminGroup.PUT("/products/:id/pricing-rule", r.catalogHandler.UpsertPricingRule)
		adminGroup.DELETE("/products/:id/pricing-rule", r.catalogHandler.DeletePricingRule)
		adminGroup.GET("/pricing-rules", r.catalogHandler.ListPricingRules)

		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.POST("/orders/scan", r.orderHandler.ScanOrder)
		adminGroup.PATCH("/orders/:code/tracking", r.orderHandler.UpdateTracking)
		adminGroup.POST("/orders/:code/paid", r.orderHandler.MarkPaid)
		adminGroup.POST("/orders/:code/reprice", r.orderHandler.Reprice)
		adminGroup.POST("/orders/:code/reactivate", r.orderHandler.ReactivateOrder)

		adminGroup.GET("/dashboard/summary", r.dashboardHandler.Summary)
		adminGroup.GET("/dashboard/revenue", r.dashboardHandler.Revenue)
		adminGroup.GET("/dashboard/recent-orders", r.dashboardHandler.RecentOrders)

		adminGroup.POST("/users/:id/active", r.profileHandler.SetUserActive)
	}
}
