package routes

import (
	"craftnest/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddUserRoutes(router, rateLimiter)
	AddProductRoutes(router, rateLimiter)
	AddWorkshopRoutes(router, rateLimiter)
	AddOrderRoutes(router, rateLimiter)
	AddPayRoutes(router, rateLimiter)
	AddCommunityRoutes(router, rateLimiter)
	AddUploadRoutes(router, rateLimiter)
	AddStaticRoutes(router)
}
