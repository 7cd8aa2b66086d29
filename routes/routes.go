package routes

import (
	"net/http"

	"craftnest/auth"
	"craftnest/middleware"
	"craftnest/products"
	"craftnest/ratelim"
	"craftnest/users"
	"craftnest/workshops"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(auth.Logout),
	)
}

func AddUserRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/artisans", rateLimiter.Limit(users.ListArtisans))
	router.GET("/api/users/:userId", rateLimiter.Limit(users.GetProfile))
	router.PUT("/api/users/:userId",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(users.UpdateProfile),
	)
}

func AddProductRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/products", rateLimiter.Limit(products.GetProducts))
	router.GET("/api/products/:productId", rateLimiter.Limit(products.GetProduct))

	router.POST("/api/products",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("artisan"),
		)(products.CreateProduct),
	)
	router.PUT("/api/products/:productId",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("artisan"),
		)(products.UpdateProduct),
	)
	router.DELETE("/api/products/:productId",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("artisan", "admin"),
		)(products.DeleteProduct),
	)

	router.POST("/api/products/:productId/reviews",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(products.AddReview),
	)
}

func AddWorkshopRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/workshops", rateLimiter.Limit(workshops.GetWorkshops))
	router.GET("/api/workshops/:workshopId", rateLimiter.Limit(workshops.GetWorkshop))

	router.POST("/api/workshops",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("artisan"),
		)(workshops.CreateWorkshop),
	)
	router.DELETE("/api/workshops/:workshopId",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("artisan", "admin"),
		)(workshops.DeleteWorkshop),
	)

	router.POST("/api/workshops/:workshopId/enroll",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
			middleware.RequireRoles("learner"),
		)(workshops.Enroll),
	)
	router.POST("/api/workshops/:workshopId/reviews",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(workshops.AddReview),
	)
}
