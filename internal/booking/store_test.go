package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-booking/internal/model"
)

func mkRes(id, room, user string, start, end time.Time) *model.Reservation {
	return &model.Reservation{ID: id, UserID: user, RoomID: room, StartTime: start, EndTime: end}
}

func TestStoreOverlapBoundaries(t *testing.T) {
	s := NewStore(NewCatalog())
	base := time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC)
	s.Insert(mkRes("r1", "aurora", "alice", base, base.Add(time.Hour)))

	// Touching at the end boundary is not an overlap.
	assert.False(t, s.Overlaps("aurora", base.Add(time.Hour), base.Add(2*time.Hour)))
	// Touching at the start boundary is not an overlap.
	assert.False(t, s.Overlaps("aurora", base.Add(-time.Hour), base))
	// One minute of intersection is.
	assert.True(t, s.Overlaps("aurora", base.Add(59*time.Minute), base.Add(2*time.Hour)))
	// Containment is.
	assert.True(t, s.Overlaps("aurora", base.Add(-time.Hour), base.Add(2*time.Hour)))
	// Other rooms are independent.
	assert.False(t, s.Overlaps("sauna", base, base.Add(time.Hour)))
}

func TestStoreRemoveKeepsIndexesInStep(t *testing.T) {
	s := NewStore(NewCatalog())
	base := time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC)
	s.Insert(mkRes("r1", "helmi", "alice", base, base.Add(time.Hour)))
	s.Insert(mkRes("r2", "helmi", "bob", base.Add(time.Hour), base.Add(2*time.Hour)))

	room, ok := s.Remove("r1")
	require.True(t, ok)
	assert.Equal(t, "helmi", room)

	// Gone from both indexes: the slot is free and the ID unknown.
	assert.False(t, s.Overlaps("helmi", base, base.Add(time.Hour)))
	_, ok = s.Remove("r1")
	assert.False(t, ok)

	items := s.ListByRoom("helmi", "")
	require.Len(t, items, 1)
	assert.Equal(t, "r2", items[0].ID)
}

func TestStoreListCopies(t *testing.T) {
	s := NewStore(NewCatalog())
	base := time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC)
	s.Insert(mkRes("r1", "sisu", "alice", base, base.Add(time.Hour)))

	items := s.ListByRoom("sisu", "")
	require.Len(t, items, 1)
	items[0].UserID = "mallory"

	again := s.ListByRoom("sisu", "")
	assert.Equal(t, "alice", again[0].UserID, "listing must hand out copies")
}
