package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/handler"
	"github.com/iliyamo/room-booking/internal/middleware"
)

// RegisterRoutes registers all API routes on the provided Echo instance.
// The rate limiter applies to every endpoint; the response cache applies
// only to the room catalog, which is immutable for the process lifetime.
// Reservation routes are never cached so that list responses always
// reflect the current store.
func RegisterRoutes(e *echo.Echo, rooms *handler.RoomHandler, reservations *handler.ReservationHandler, rdb *redis.Client) {
	// Health endpoint for load balancers and monitoring; exempt from rate
	// limiting so probes cannot starve out real traffic or vice versa.
	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	v1 := e.Group("/v1", limiter)

	// Room catalog: fixed six rooms, safe to cache.
	v1.GET("/rooms", rooms.List, cache)

	// Reservation lifecycle: create, cancel, list per room.
	v1.POST("/reservations", reservations.Create)
	v1.DELETE("/reservations/:id", reservations.Cancel)
	v1.GET("/rooms/:id/reservations", reservations.ListByRoom)
}
