package booking

import "github.com/iliyamo/room-booking/internal/model"

// Catalog is the fixed set of bookable rooms.  It is built once at startup
// and never mutated afterwards, so it can be read from any goroutine
// without locking.  Membership is checked through an index map; listing
// preserves the definition order.
type Catalog struct {
	rooms []model.Room          // rooms in definition order
	index map[string]model.Room // room ID -> room for O(1) lookups
}

// NewCatalog returns the six-room catalog used by the service.
func NewCatalog() *Catalog {
	rooms := []model.Room{
		{ID: "aurora", Name: "Aurora"},
		{ID: "borealis", Name: "Borealis"},
		{ID: "helmi", Name: "Helmi"},
		{ID: "sauna", Name: "Sauna"},
		{ID: "sisu", Name: "Sisu"},
		{ID: "taiga", Name: "Taiga"},
	}
	index := make(map[string]model.Room, len(rooms))
	for _, r := range rooms {
		index[r.ID] = r
	}
	return &Catalog{rooms: rooms, index: index}
}

// Exists reports whether the given room ID is a member of the catalog.
func (c *Catalog) Exists(roomID string) bool {
	_, ok := c.index[roomID]
	return ok
}

// List returns the rooms in definition order.  The returned slice is a
// copy, so callers may not mutate catalog state through it.
func (c *Catalog) List() []model.Room {
	out := make([]model.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}
