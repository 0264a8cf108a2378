package domain

import "strings"

// Filter keys the collaborator may set. Anything else matches nothing,
// which surfaces typos immediately instead of silently showing everyone.
const (
	FilterByName = "name"
	FilterByRoom = "room"
)

// UsersFilter is a local-only key/value view filter over the user set.
// It never affects server state. The zero value matches every user.
type UsersFilter struct {
	Key   string
	Value string
}

func (f UsersFilter) IsZero() bool {
	return f.Key == "" && f.Value == ""
}

func (f UsersFilter) Match(u User) bool {
	if f.IsZero() {
		return true
	}
	switch f.Key {
	case FilterByName:
		return strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.Value))
	case FilterByRoom:
		return u.RoomID == RoomID(f.Value)
	default:
		return false
	}
}
