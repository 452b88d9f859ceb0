package booking

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is the pinned clock used across engine tests: mid-year so the
// current-year rule leaves plenty of room on both sides.
var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngineWithClock(NewCatalog(), func() time.Time { return testNow })
}

// stamp formats an offset from testNow as an RFC 3339 UTC timestamp.
func stamp(d time.Duration) string {
	return testNow.Add(d).Format(time.RFC3339)
}

func TestCreateAndList(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Create("aurora", "alice", stamp(time.Hour), stamp(2*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "aurora", res.RoomID)
	assert.Equal(t, "alice", res.UserID)
	assert.Equal(t, testNow.Add(time.Hour), res.StartTime)
	assert.Equal(t, testNow.Add(2*time.Hour), res.EndTime)
	assert.Equal(t, time.UTC, res.StartTime.Location())

	items, err := e.List("aurora", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, res.ID, items[0].ID)
}

func TestCreateUnknownRoom(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Create("nonexistent", "alice", stamp(time.Hour), stamp(2*time.Hour))
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

// Room existence is checked before the timestamps, so a bad room wins even
// when the times are also broken.  The validation order is part of the
// API contract, not an accident.
func TestCreateUnknownRoomWinsOverBadTime(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Create("nonexistent", "alice", "not-a-time", "also-not-a-time")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestCreateMalformedTime(t *testing.T) {
	e := newTestEngine(t)

	// No offset at all.
	_, err := e.Create("aurora", "alice", "2026-06-10T10:00:00", "2026-06-10T11:00:00+02:00")
	assert.ErrorIs(t, err, ErrMalformedTime)

	// Garbage.
	_, err = e.Create("aurora", "alice", "yesterday", stamp(time.Hour))
	assert.ErrorIs(t, err, ErrMalformedTime)

	// End malformed while start is fine.
	_, err = e.Create("aurora", "alice", stamp(time.Hour), "2026-06-10T11:00:00")
	assert.ErrorIs(t, err, ErrMalformedTime)

	// Invalid calendar date despite valid shape.
	_, err = e.Create("aurora", "alice", "2026-02-30T10:00:00Z", stamp(time.Hour))
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestCreateInvalidRange(t *testing.T) {
	e := newTestEngine(t)

	// start == end
	_, err := e.Create("aurora", "alice", stamp(time.Hour), stamp(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidRange)

	// start > end
	_, err = e.Create("aurora", "alice", stamp(2*time.Hour), stamp(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCreatePastStart(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Create("aurora", "alice", stamp(-time.Second), stamp(time.Hour))
	assert.ErrorIs(t, err, ErrPastStart)
}

func TestCreateOutOfYearRange(t *testing.T) {
	e := newTestEngine(t)

	// Entirely next year.
	_, err := e.Create("aurora", "alice", "2027-01-10T10:00:00Z", "2027-01-10T11:00:00Z")
	assert.ErrorIs(t, err, ErrOutOfYearRange)

	// Spans the year boundary: starts in the current year, ends in the next.
	_, err = e.Create("aurora", "alice", "2026-12-31T23:00:00Z", "2027-01-01T01:00:00Z")
	assert.ErrorIs(t, err, ErrOutOfYearRange)
}

func TestOverlapRejected(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Create("aurora", "alice", stamp(time.Hour), stamp(2*time.Hour))
	require.NoError(t, err)

	// [1h30, 2h30) overlaps [1h, 2h).
	_, err = e.Create("aurora", "bob", stamp(90*time.Minute), stamp(150*time.Minute))
	assert.ErrorIs(t, err, ErrOverlapConflict)

	// Candidate fully containing the existing interval also conflicts.
	_, err = e.Create("aurora", "bob", stamp(30*time.Minute), stamp(3*time.Hour))
	assert.ErrorIs(t, err, ErrOverlapConflict)

	// The same interval in a different room is fine.
	_, err = e.Create("sauna", "bob", stamp(90*time.Minute), stamp(150*time.Minute))
	assert.NoError(t, err)
}

func TestBackToBackAllowed(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Create("helmi", "alice", stamp(time.Hour), stamp(2*time.Hour))
	require.NoError(t, err)

	// [2h, 3h) starts exactly where [1h, 2h) ends; half-open intervals
	// make this legal.
	_, err = e.Create("helmi", "bob", stamp(2*time.Hour), stamp(3*time.Hour))
	assert.NoError(t, err)
}

// A booking made with a +02:00 offset must collide with one made for the
// same instant expressed in Z, because both normalize to the same UTC
// moment.
func TestTimezoneNormalization(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Create("sisu", "alice", "2026-06-10T10:00:00+02:00", "2026-06-10T11:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC), res.StartTime)

	_, err = e.Create("sisu", "bob", "2026-06-10T08:00:00Z", "2026-06-10T09:00:00Z")
	assert.ErrorIs(t, err, ErrOverlapConflict)
}

func TestCancelNotIdempotent(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Create("taiga", "alice", stamp(time.Hour), stamp(2*time.Hour))
	require.NoError(t, err)

	require.NoError(t, e.Cancel(res.ID))
	assert.ErrorIs(t, e.Cancel(res.ID), ErrNotFound)

	// The slot is free again after cancellation.
	_, err = e.Create("taiga", "bob", stamp(time.Hour), stamp(2*time.Hour))
	assert.NoError(t, err)
}

func TestCancelUnknownID(t *testing.T) {
	e := newTestEngine(t)
	assert.ErrorIs(t, e.Cancel("no-such-id"), ErrNotFound)
}

func TestListUnknownRoom(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.List("nonexistent", "")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestListFilterAndOrder(t *testing.T) {
	e := newTestEngine(t)

	// Insert out of chronological order.
	_, err := e.Create("borealis", "bob", stamp(3*time.Hour), stamp(4*time.Hour))
	require.NoError(t, err)
	_, err = e.Create("borealis", "alice", stamp(time.Hour), stamp(2*time.Hour))
	require.NoError(t, err)
	_, err = e.Create("borealis", "alice", stamp(5*time.Hour), stamp(6*time.Hour))
	require.NoError(t, err)

	all, err := e.List("borealis", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].StartTime.Before(all[i].StartTime), "list must be sorted by start time")
	}

	mine, err := e.List("borealis", "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, "alice", r.UserID)
	}

	none, err := e.List("borealis", "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRooms(t *testing.T) {
	e := newTestEngine(t)

	rooms := e.Rooms()
	require.Len(t, rooms, 6)
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"aurora", "borealis", "helmi", "sauna", "sisu", "taiga"}, ids)
}

// Exactly one of N concurrent requests for the same slot may win; all
// others must see the overlap conflict.  This is the race the engine
// mutex exists to prevent.
func TestConcurrentCreateSameSlot(t *testing.T) {
	e := newTestEngine(t)

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.Create("aurora", fmt.Sprintf("user-%d", i), stamp(time.Hour), stamp(2*time.Hour))
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrOverlapConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent create may succeed")
	assert.Equal(t, n-1, conflicts)

	items, err := e.List("aurora", "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// Concurrent creates for disjoint slots must all succeed and leave a
// pairwise non-overlapping reservation set.
func TestConcurrentCreateDisjointSlots(t *testing.T) {
	e := newTestEngine(t)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := time.Duration(i+1) * time.Hour
			_, errs[i] = e.Create("sauna", "alice", stamp(start), stamp(start+time.Hour))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "slot %d", i)
	}

	items, err := e.List("sauna", "")
	require.NoError(t, err)
	require.Len(t, items, n)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].StartTime.Before(items[i-1].EndTime),
			"accepted reservations must not overlap")
	}
}
