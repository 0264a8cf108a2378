package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsersFilter_ZeroValueMatchesEveryone(t *testing.T) {
	req := require.New(t)
	var filter UsersFilter

	req.True(filter.IsZero())
	req.True(filter.Match(User{ID: "u1", Name: "Alice", RoomID: "r1"}))
	req.True(filter.Match(User{}))
}

func TestUsersFilter_ByNameIsCaseInsensitiveSubstring(t *testing.T) {
	req := require.New(t)
	filter := UsersFilter{Key: FilterByName, Value: "ali"}

	req.True(filter.Match(User{Name: "Alice"}))
	req.True(filter.Match(User{Name: "NATALIE"}))
	req.False(filter.Match(User{Name: "Bob"}))
}

func TestUsersFilter_ByRoomIsExact(t *testing.T) {
	req := require.New(t)
	filter := UsersFilter{Key: FilterByRoom, Value: "r1"}

	req.True(filter.Match(User{Name: "Alice", RoomID: "r1"}))
	req.False(filter.Match(User{Name: "Bob", RoomID: "r10"}))
}

func TestUsersFilter_UnknownKeyMatchesNothing(t *testing.T) {
	req := require.New(t)
	filter := UsersFilter{Key: "rooom", Value: "r1"}

	req.False(filter.Match(User{Name: "Alice", RoomID: "r1"}))
}
