package routes

import (
	"craftnest/config"
	"craftnest/middleware"
	"craftnest/orders"
	"craftnest/payment"
	"craftnest/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddOrderRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	// Purchasing is buyer-only; learners and artisans are rejected here
	// before any handler runs.
	router.POST("/api/orders",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("buyer"),
		)(orders.CreateOrder),
	)
	router.GET("/api/orders",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(orders.GetOrders),
	)
	router.GET("/api/orders/:orderId",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(orders.GetOrder),
	)
	router.PATCH("/api/orders/:orderId/status",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("artisan", "admin"),
		)(orders.UpdateOrderStatus),
	)
	router.DELETE("/api/orders/:orderId",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("buyer", "admin"),
		)(orders.CancelOrder),
	)
	router.GET("/api/orders/:orderId/invoice",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(orders.PrintInvoice),
	)

	// Live order feed for artisans. The token rides in the query string
	// because browsers cannot set headers on websocket upgrades.
	router.GET("/ws/orders",
		middleware.Chain(
			middleware.Authenticate,
			middleware.RequireRoles("artisan"),
		)(orders.LiveFeed.Subscribe),
	)
}

// AddPayRoutes wires the payment gateway bridge.
func AddPayRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	payService := payment.NewService(config.Cfg)

	router.POST("/api/payment/create-order",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("buyer"),
		)(payService.CreateOrder),
	)
	router.POST("/api/payment/verify",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("buyer"),
		)(payService.Verify),
	)
}
