package booking

import (
	"sort"
	"time"

	"github.com/iliyamo/room-booking/internal/model"
)

// Store holds all active reservations in memory.  It keeps two indexes in
// step: a byID map for cancellation lookups and a per-room map for overlap
// checks and listing, mirroring the shape reservation data is queried in.
// The store owns every reservation it holds; listing hands out copies.
//
// Store methods are not goroutine-safe on their own.  The Engine serializes
// all access behind its mutex so that an overlap check and the insert that
// follows it can never interleave with another mutation.
type Store struct {
	byID   map[string]*model.Reservation   // reservation ID -> reservation
	byRoom map[string][]*model.Reservation // room ID -> active reservations
}

// NewStore returns an empty store with one bucket per catalog room.
func NewStore(catalog *Catalog) *Store {
	byRoom := make(map[string][]*model.Reservation, len(catalog.rooms))
	for _, r := range catalog.rooms {
		byRoom[r.ID] = nil
	}
	return &Store{
		byID:   make(map[string]*model.Reservation),
		byRoom: byRoom,
	}
}

// Overlaps reports whether any active reservation in the room overlaps the
// half-open candidate interval [start, end).  Back-to-back intervals, where
// one's end equals the other's start, do not overlap.
func (s *Store) Overlaps(roomID string, start, end time.Time) bool {
	for _, ex := range s.byRoom[roomID] {
		if start.Before(ex.EndTime) && ex.StartTime.Before(end) {
			return true
		}
	}
	return false
}

// Insert adds a reservation to the room's active set.  The caller must
// have verified under the engine lock that no overlapping reservation
// exists.
func (s *Store) Insert(res *model.Reservation) {
	s.byID[res.ID] = res
	s.byRoom[res.RoomID] = append(s.byRoom[res.RoomID], res)
}

// Remove deletes the reservation with the given ID from both indexes.  It
// returns the room the reservation belonged to and whether a deletion
// occurred.  Removal is a hard delete; cancelled reservations are not
// retained.
func (s *Store) Remove(id string) (string, bool) {
	res, ok := s.byID[id]
	if !ok {
		return "", false
	}
	delete(s.byID, id)
	list := s.byRoom[res.RoomID]
	for i, r := range list {
		if r.ID == id {
			s.byRoom[res.RoomID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return res.RoomID, true
}

// ListByRoom returns copies of the room's active reservations sorted
// ascending by start time.  When userFilter is non-empty, only
// reservations whose UserID equals the filter are included.
func (s *Store) ListByRoom(roomID, userFilter string) []model.Reservation {
	out := make([]model.Reservation, 0, len(s.byRoom[roomID]))
	for _, res := range s.byRoom[roomID] {
		if userFilter != "" && res.UserID != userFilter {
			continue
		}
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}
