package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/room-booking/internal/model"
)

// Engine evaluates booking requests against the admission rules and
// coordinates all access to the shared store.  A single mutex guards the
// whole store: the room count is tiny and fixed, and every operation is
// pure in-memory compute, so per-room locking would buy nothing.  The
// critical property is that the overlap check and the insert that follows
// it run as one atomic unit with respect to every other create and cancel;
// the mutex is what makes concurrent requests for the same slot resolve to
// exactly one winner.
type Engine struct {
	catalog *Catalog         // fixed room set
	store   *Store           // reservation state, guarded by mu
	mu      sync.Mutex       // serializes check-and-insert and remove
	now     func() time.Time // clock source; overridable in tests
}

// NewEngine constructs an engine around its own empty store.  Each engine
// instance is fully isolated, so tests can build one per test case.
func NewEngine(catalog *Catalog) *Engine {
	return NewEngineWithClock(catalog, time.Now)
}

// NewEngineWithClock is NewEngine with an explicit clock source.  Tests
// pin the clock so the past and current-year rules evaluate against a
// known instant instead of the wall clock.
func NewEngineWithClock(catalog *Catalog, now func() time.Time) *Engine {
	if catalog == nil {
		panic("nil catalog passed to NewEngine")
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		catalog: catalog,
		store:   NewStore(catalog),
		now:     now,
	}
}

// Rooms returns the catalog rooms in definition order.
func (e *Engine) Rooms() []model.Room {
	return e.catalog.List()
}

// Create validates a booking request and, when every rule passes, commits
// it to the store and returns the new reservation.  Rules are checked in a
// fixed order and the first violated rule decides the returned error:
// room existence, timestamp parsing, range direction, past start, current
// UTC calendar year, then overlap.  The current instant is sampled once so
// the past check and the year checks agree within one request.  The
// overlap check and the insert run under the engine mutex.
func (e *Engine) Create(roomID, userID, startRaw, endRaw string) (*model.Reservation, error) {
	if !e.catalog.Exists(roomID) {
		return nil, ErrUnknownRoom
	}
	start, err := ParseStamp(startRaw)
	if err != nil {
		return nil, err
	}
	end, err := ParseStamp(endRaw)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}
	now := e.now().UTC()
	if start.Before(now) {
		return nil, ErrPastStart
	}
	if YearOf(start) != YearOf(now) || YearOf(end) != YearOf(now) {
		return nil, ErrOutOfYearRange
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.store.Overlaps(roomID, start, end) {
		return nil, ErrOverlapConflict
	}
	res := &model.Reservation{
		ID:        uuid.NewString(),
		UserID:    userID,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
	}
	e.store.Insert(res)
	out := *res
	return &out, nil
}

// Cancel removes the reservation with the given ID.  It returns
// ErrNotFound when no such reservation exists, including when the same ID
// is cancelled a second time.
func (e *Engine) Cancel(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.store.Remove(id); !ok {
		return ErrNotFound
	}
	return nil
}

// List returns the room's active reservations sorted by start time,
// optionally filtered to a single user.  It returns ErrUnknownRoom when
// the room is not in the catalog.
func (e *Engine) List(roomID, userFilter string) ([]model.Reservation, error) {
	if !e.catalog.Exists(roomID) {
		return nil, ErrUnknownRoom
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.ListByRoom(roomID, userFilter), nil
}
