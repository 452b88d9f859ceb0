package model

// Room is one of the bookable meeting rooms.  The set of rooms is fixed at
// process start and never changes; requests reference rooms by ID and the
// booking engine checks membership, it never creates rooms.
//
// Fields:
//  ID   – lowercase identifier used in URLs and request bodies.
//  Name – human-readable display name.
type Room struct {
	ID   string `json:"id"`   // room identifier, e.g. "aurora"
	Name string `json:"name"` // display name, e.g. "Aurora"
}
