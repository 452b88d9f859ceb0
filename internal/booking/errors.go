// Package booking implements the reservation admission core: the fixed room
// catalog, timestamp normalization, the in-memory reservation store and the
// engine that decides whether a candidate booking may be committed.  Rule
// violations are reported as the sentinel errors defined in this file so
// that higher layers such as HTTP handlers can distinguish failure
// scenarios with errors.Is and translate each one into a precise response.
package booking

import "errors"

// ErrUnknownRoom is returned when the requested room ID is not a member of
// the fixed catalog.  Handlers should translate this into an HTTP 404.
var ErrUnknownRoom = errors.New("unknown room")

// ErrMalformedTime is returned when a timestamp string cannot be parsed or
// does not carry an explicit UTC offset.  Handlers should translate this
// into an HTTP 422.
var ErrMalformedTime = errors.New("malformed timestamp")

// ErrInvalidRange is returned when a reservation's start is not strictly
// before its end.  Handlers should translate this into an HTTP 422.
var ErrInvalidRange = errors.New("start must be before end")

// ErrPastStart is returned when a reservation would start before the
// current instant.  Handlers should translate this into an HTTP 422.
var ErrPastStart = errors.New("reservation starts in the past")

// ErrOutOfYearRange is returned when either endpoint of a reservation falls
// outside the current UTC calendar year.  This single kind covers both a
// wholly wrong year and an interval spanning a year boundary.  Handlers
// should translate this into an HTTP 422.
var ErrOutOfYearRange = errors.New("reservation outside the current year")

// ErrOverlapConflict is returned when the candidate interval overlaps an
// existing active reservation in the same room.  Handlers should translate
// this into an HTTP 409.
var ErrOverlapConflict = errors.New("reservation overlaps an existing one")

// ErrNotFound is returned when a cancellation target does not exist or was
// already cancelled.  Cancellation is deliberately not idempotent: the
// second cancel of the same ID yields this error.  Handlers should
// translate it into an HTTP 404.
var ErrNotFound = errors.New("reservation not found")
