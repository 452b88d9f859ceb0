// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a booking has been admitted and
// committed to the store.  It carries enough information for downstream
// consumers to log or notify without calling back into the API.
type ReservationCreatedEvent struct {
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
	RoomID        string `json:"room_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CreatedAt     string `json:"created_at"`
}

// ReservationCancelledEvent is published when a reservation is removed via
// the cancellation endpoint.
type ReservationCancelledEvent struct {
	ReservationID string `json:"reservation_id"`
	CancelledAt   string `json:"cancelled_at"`
}
