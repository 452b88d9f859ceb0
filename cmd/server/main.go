package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/room-booking/internal/booking" // Reservation admission core
	"github.com/iliyamo/room-booking/internal/config"  // Internal config loader
	"github.com/iliyamo/room-booking/internal/handler" // HTTP handlers
	"github.com/iliyamo/room-booking/internal/queue"   // Reservation event consumer
	"github.com/iliyamo/room-booking/internal/router"  // Internal router setup
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// The engine owns the catalog, the in-memory store and the lock that
	// makes check-and-insert atomic.  Everything hangs off this one value.
	engine := booking.NewEngine(booking.NewCatalog())

	// Redis is optional; a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}

	// Consume reservation events in the background when publishing is on.
	if cfg.EventsEnabled {
		go func() {
			if err := queue.StartReservationConsumer(); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e,
		handler.NewRoomHandler(engine),
		handler.NewReservationHandler(engine, cfg.EventsEnabled),
		rdb,
	)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
