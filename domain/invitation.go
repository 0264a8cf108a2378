package domain

// Invitation is a transient offer for the local user to join a meeting
// in a specific room. At most one invitation is live per session; a new
// one overwrites the previous (last invitation wins, no queue).
type Invitation struct {
	User User
	Room Room
}
