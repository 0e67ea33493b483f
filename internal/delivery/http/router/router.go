// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mandi/internal/delivery/http/middleware"
	"mandi/internal/delivery/http/router/handler"
	"mandi/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MapHandler     *handler.MapHandler
	OrderHandler   *handler.OrderHandler
	WalletHandler  *handler.WalletHandler
	SellerHandler  *handler.SellerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	mapHandler     *handler.MapHandler
	orderHandler   *handler.OrderHandler
	walletHandler  *handler.WalletHandler
	sellerHandler  *handler.SellerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		mapHandler:     params.MapHandler,
		orderHandler:   params.OrderHandler,
		walletHandler:  params.WalletHandler,
		sellerHandler:  params.SellerHandler,
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
		authGroup.POST("/buyer/register", r.authHandler.RegisterBuyer)
		authGroup.POST("/buyer/login", r.authHandler.LoginBuyer)
		authGroup.POST("/seller/register", r.authHandler.RegisterSeller)
		authGroup.POST("/seller/login", r.authHandler.LoginSeller)
	}

	// Geo routes: distance math and seller discovery
	mapGroup := e.Group("/map")
	{
		mapGroup.POST("/distance", r.mapHandler.Distance)
		mapGroup.POST("/find-closest-sellers", r.mapHandler.FindClosestSellers)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/place-order", r.orderHandler.PlaceOrder)
		orderGroup.PATCH("/:orderId/cancel", r.orderHandler.CancelOrder)
		orderGroup.PATCH("/:orderId/status", r.orderHandler.UpdateOrderStatus)
		orderGroup.GET("/buyer/:buyerId", r.orderHandler.GetBuyerOrders)
		orderGroup.GET("/seller/:sellerId", r.orderHandler.GetSellerOrders)
	}

	// Buyer wallet routes that require authentication
	buyerGroup := e.Group("/buyers")
	buyerGroup.Use(r.authMiddleware.Authenticate)
	{
		buyerGroup.GET("/credit-wallet/:buyerId", r.walletHandler.GetWallet)
		buyerGroup.POST("/apply-credit-points/:buyerId", r.walletHandler.ApplyCreditPoints)
	}

	// Seller payment QR is public so buyers can fetch it at checkout
	e.GET("/sellers/:sellerId/payment-qr", r.sellerHandler.GetPaymentQR)

	// Seller catalog routes that require authentication and the "seller" role
	sellerGroup := e.Group("/sellers")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole(entity.RoleSeller))
	{
		sellerGroup.POST("/:sellerId/products", r.sellerHandler.AddProduct)
		sellerGroup.GET("/:sellerId/products", r.sellerHandler.GetProducts)
		sellerGroup.PATCH("/:sellerId/products/:productId", r.sellerHandler.UpdateProduct)
		sellerGroup.DELETE("/:sellerId/products/:productId", r.sellerHandler.DeleteProduct)
	}
}
