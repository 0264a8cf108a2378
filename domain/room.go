package domain

type RoomID string

// Room is a named space users can be located in.
// Membership is not stored on the room itself: it is derived from the
// User set, which the reconciler keeps authoritative.
type Room struct {
	ID   RoomID `json:"id"`
	Name string `json:"name"`
}
