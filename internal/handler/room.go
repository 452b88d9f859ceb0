package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/booking"
)

// RoomHandler exposes the room catalog.  The catalog is fixed at startup,
// so the listing endpoint is a natural target for the response cache
// middleware; nothing it returns can ever go stale.
type RoomHandler struct {
	Engine *booking.Engine // provides access to the catalog
}

// NewRoomHandler constructs a RoomHandler and panics if the engine is nil.
func NewRoomHandler(engine *booking.Engine) *RoomHandler {
	if engine == nil {
		panic("nil engine passed to NewRoomHandler")
	}
	return &RoomHandler{Engine: engine}
}

// List handles GET /v1/rooms.  It returns the six rooms in catalog
// definition order with their IDs and display names.
func (h *RoomHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Engine.Rooms())
}
