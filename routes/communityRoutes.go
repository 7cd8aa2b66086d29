package routes

import (
	"craftnest/community"
	"craftnest/middleware"
	"craftnest/ratelim"
	"craftnest/uploads"

	"github.com/julienschmidt/httprouter"
)

func AddCommunityRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/community", rateLimiter.Limit(community.GetPosts))
	router.GET("/api/community/:postId",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.OptionalAuth,
		)(community.GetPost),
	)

	router.POST("/api/community",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(community.CreatePost),
	)
	router.POST("/api/community/:postId/like",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(community.LikePost),
	)
	router.POST("/api/community/:postId/comment",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(community.AddComment),
	)
}

func AddUploadRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/uploads",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(uploads.UploadImage),
	)
	router.POST("/api/uploads/multiple",
		middleware.Chain(
			rateLimiter.Limit,
			middleware.Authenticate,
		)(uploads.UploadImages),
	)
}
