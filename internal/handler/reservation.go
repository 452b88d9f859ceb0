package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/booking"
	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/queue"
	queue_publisher "github.com/iliyamo/room-booking/internal/service"
)

// ReservationHandler exposes the reservation endpoints.  It holds the
// booking engine, which owns all reservation state and locking; the
// handler's job is limited to request binding, translating engine errors
// into HTTP status codes and publishing lifecycle events after successful
// mutations.
type ReservationHandler struct {
	Engine        *booking.Engine // admission engine, must be non-nil
	PublishEvents bool            // emit broker events after successful mutations
}

// NewReservationHandler constructs a ReservationHandler and panics if the
// engine is nil.
func NewReservationHandler(engine *booking.Engine, publishEvents bool) *ReservationHandler {
	if engine == nil {
		panic("nil engine passed to NewReservationHandler")
	}
	return &ReservationHandler{Engine: engine, PublishEvents: publishEvents}
}

// createRequest is the JSON body for POST /v1/reservations.  Timestamps
// stay raw strings here; parsing and offset validation belong to the
// engine so that the admission rules see exactly what the caller sent.
type createRequest struct {
	UserID    string `json:"user_id"`
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// rejectionStatus maps each admission error to its HTTP status code.
// Unknown rooms and missing reservations are 404, conflicting intervals
// are 409 and every temporal rule violation is 422.  Any other error is a
// programming bug and surfaces as 500.
func rejectionStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrUnknownRoom), errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrOverlapConflict):
		return http.StatusConflict
	case errors.Is(err, booking.ErrMalformedTime),
		errors.Is(err, booking.ErrInvalidRange),
		errors.Is(err, booking.ErrPastStart),
		errors.Is(err, booking.ErrOutOfYearRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Create handles POST /v1/reservations.  It binds the request body,
// enforces the same field length caps as the public API contract
// (user_id up to 64 characters, room_id up to 32) and delegates the
// admission decision to the engine.  On success it returns 201 with the
// stored reservation and publishes a reservation.created event; publish
// failures are logged inside the publisher and never fail the request.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body createRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == "" || len(body.UserID) > 64 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id must be 1-64 characters"})
	}
	if body.RoomID == "" || len(body.RoomID) > 32 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id must be 1-32 characters"})
	}
	res, err := h.Engine.Create(body.RoomID, body.UserID, body.StartTime, body.EndTime)
	if err != nil {
		return c.JSON(rejectionStatus(err), echo.Map{"error": err.Error()})
	}
	if h.PublishEvents {
		go publishCreated(res)
	}
	return c.JSON(http.StatusCreated, res)
}

func publishCreated(res *model.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishReservationCreated(ctx, queue.ReservationCreatedEvent{
		ReservationID: res.ID,
		UserID:        res.UserID,
		RoomID:        res.RoomID,
		StartTime:     res.StartTime.Format(time.RFC3339),
		EndTime:       res.EndTime.Format(time.RFC3339),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// Cancel handles DELETE /v1/reservations/:id.  Cancellation is not
// idempotent: the first call removes the reservation and returns 200, a
// second call with the same ID returns 404.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id := c.Param("id")
	if id == "" || len(id) > 64 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	if err := h.Engine.Cancel(id); err != nil {
		return c.JSON(rejectionStatus(err), echo.Map{"error": err.Error()})
	}
	if h.PublishEvents {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishReservationCancelled(ctx, queue.ReservationCancelledEvent{
				ReservationID: id,
				CancelledAt:   time.Now().UTC().Format(time.RFC3339),
			})
		}()
	}
	return c.JSON(http.StatusOK, echo.Map{
		"cancelled":      true,
		"reservation_id": id,
	})
}

// ListByRoom handles GET /v1/rooms/:id/reservations.  Results are sorted
// ascending by start time and can be narrowed to a single user with the
// optional ?user_id= query parameter.
func (h *ReservationHandler) ListByRoom(c echo.Context) error {
	roomID := c.Param("id")
	userFilter := c.QueryParam("user_id")
	items, err := h.Engine.List(roomID, userFilter)
	if err != nil {
		return c.JSON(rejectionStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}
