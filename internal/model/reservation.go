package model

import "time"

// Reservation records a user's booking of a room for a half-open time
// interval [StartTime, EndTime).  All fields are immutable after creation;
// a reservation is either active or gone, there is no update operation.
// Times are stored normalized to UTC so overlap comparisons never depend
// on the offset the caller originally supplied.
//
// Fields:
//  ID        – unguessable identifier generated at creation; the only
//              handle for cancellation.
//  UserID    – opaque caller-supplied identifier, used for list filtering.
//  RoomID    – identifier of the booked room.
//  StartTime – start of the interval (inclusive), UTC.
//  EndTime   – end of the interval (exclusive), UTC.
type Reservation struct {
	ID        string    `json:"reservation_id"` // random UUID string
	UserID    string    `json:"user_id"`        // who booked
	RoomID    string    `json:"room_id"`        // which room
	StartTime time.Time `json:"start_time"`     // UTC start, inclusive
	EndTime   time.Time `json:"end_time"`       // UTC end, exclusive
}
