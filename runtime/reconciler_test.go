package runtime

import (
	"log/slog"
	"office-lab/domain"
	"office-lab/domain/event"
	"office-lab/state"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestReconciler wires a reconciler over a fresh office with a
// short debounce so tests observe notifications quickly.
func newTestReconciler(t *testing.T) (*Reconciler, *state.Office, *recordingSink) {
	t.Helper()
	office := state.NewOffice(slog.Default())
	office.SetRooms([]domain.Room{
		{ID: "r1", Name: "Lobby"},
		{ID: "r2", Name: "War Room"},
	})
	sink := &recordingSink{}
	notifier := NewNotifier(slog.Default(), sink, 10*time.Millisecond)
	t.Cleanup(notifier.Stop)
	return NewReconciler(slog.Default(), office, notifier), office, sink
}

func TestReconciler_Joined_UpsertsIntoRoom(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)

	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "u1", Name: "Alice"}, Room: "r1"})
	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "u1", Name: "Alice"}, Room: "r1"})

	members := office.Snapshot().UsersInRoom("r1")
	req.Len(members, 1)
	req.Equal("Alice", members[0].Name)
}

func TestReconciler_Joined_NotifiesOnlyForCurrentRoomAndOthers(t *testing.T) {
	req := require.New(t)
	rec, office, sink := newTestReconciler(t)
	office.SetCurrentUser(domain.User{ID: "me", Name: "Me"})
	office.SetCurrentRoom(domain.Room{ID: "r1", Name: "Lobby"})

	// Self joining is silent.
	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "me", Name: "Me"}, Room: "r1"})
	// A join in another room is silent.
	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "u2", Name: "Bob"}, Room: "r2"})
	time.Sleep(40 * time.Millisecond)
	req.Empty(sink.all())

	// Someone else arriving in the viewed room notifies.
	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "u3", Name: "Clara"}, Room: "r1"})
	req.Eventually(func() bool { return len(sink.all()) == 1 }, time.Second, 5*time.Millisecond)
	req.Equal("Clara entered the Lobby.", sink.all()[0])
}

func TestReconciler_Joined_BurstCollapsesToLastNotification(t *testing.T) {
	req := require.New(t)
	rec, office, sink := newTestReconciler(t)
	office.SetCurrentUser(domain.User{ID: "me", Name: "Me"})
	office.SetCurrentRoom(domain.Room{ID: "r1", Name: "Lobby"})

	for _, name := range []string{"Ada", "Ben", "Cleo"} {
		rec.Handle(event.ParticipantJoined{
			User: domain.User{ID: domain.UserID(name), Name: name}, Room: "r1",
		})
	}

	req.Eventually(func() bool { return len(sink.all()) == 1 }, time.Second, 5*time.Millisecond)
	req.Equal("Cleo entered the Lobby.", sink.all()[0])
	// All three joins were still applied to state.
	req.Len(office.Snapshot().UsersInRoom("r1"), 3)
}

func TestReconciler_Joined_UnknownRoomIsIgnored(t *testing.T) {
	req := require.New(t)
	rec, office, sink := newTestReconciler(t)
	office.SetCurrentUser(domain.User{ID: "me", Name: "Me"})
	office.SetCurrentRoom(domain.Room{ID: "r1", Name: "Lobby"})

	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "u1", Name: "Alice"}, Room: "r404"})

	time.Sleep(40 * time.Millisecond)
	req.Empty(office.Snapshot().Users)
	req.Empty(sink.all())
}

func TestReconciler_SyncSupersedesEarlierJoins(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)

	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "uA", Name: "A"}, Room: "r1"})
	rec.Handle(event.ParticipantJoined{User: domain.User{ID: "uB", Name: "B"}, Room: "r1"})
	rec.Handle(event.OfficeSynced{UsersInRoom: []domain.User{{ID: "uC", Name: "C", RoomID: "r1"}}})

	members := office.Snapshot().UsersInRoom("r1")
	req.Len(members, 1)
	req.Equal(domain.UserID("uC"), members[0].ID)
}

func TestReconciler_MeetingStartAndLeave(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)
	alice := domain.User{ID: "u1", Name: "Alice"}

	rec.Handle(event.ParticipantJoined{User: alice, Room: "r1"})
	rec.Handle(event.ParticipantStartedMeet{User: alice, Room: "r1", Meeting: "meet-1"})
	req.True(office.Snapshot().Users[0].InMeeting())

	rec.Handle(event.ParticipantLeftMeet{User: alice, Room: "r1"})
	req.False(office.Snapshot().Users[0].InMeeting())
}

func TestReconciler_MeetingStart_FallsBackToRoomID(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)
	alice := domain.User{ID: "u1", Name: "Alice"}

	rec.Handle(event.ParticipantStartedMeet{User: alice, Room: "r1"})

	req.Equal("r1", office.Snapshot().Users[0].MeetingID)
}

func TestReconciler_Disconnect_RemovesEverywhere(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)
	alice := domain.User{ID: "u1", Name: "Alice"}

	rec.Handle(event.ParticipantJoined{User: alice, Room: "r1"})
	rec.Handle(event.ParticipantStartedMeet{User: alice, Room: "r1", Meeting: "meet-1"})
	rec.Handle(event.ParticipantDisconnected{User: "u1"})
	req.Empty(office.Snapshot().Users)

	// Disconnect for a user never seen is a no-op.
	rec.Handle(event.ParticipantDisconnected{User: "ghost"})
	req.Empty(office.Snapshot().Users)
}

func TestReconciler_Called_SetsInvitationFromDirectory(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)

	rec.Handle(event.ParticipantCalled{User: domain.User{ID: "u2", Name: "Bob"}, Room: "r2"})

	inv, ok := office.Invitation()
	req.True(ok)
	req.Equal("War Room", inv.Room.Name)
	req.Equal(domain.UserID("u2"), inv.User.ID)
}

func TestReconciler_Called_UnknownRoomIsIgnored(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)

	rec.Handle(event.ParticipantCalled{User: domain.User{ID: "u2", Name: "Bob"}, Room: "r404"})

	_, ok := office.Invitation()
	req.False(ok)
}

func TestReconciler_Called_SecondInvitationOverwritesFirst(t *testing.T) {
	req := require.New(t)
	rec, office, _ := newTestReconciler(t)

	rec.Handle(event.ParticipantCalled{User: domain.User{ID: "u2", Name: "Bob"}, Room: "r1"})
	rec.Handle(event.ParticipantCalled{User: domain.User{ID: "u3", Name: "Clara"}, Room: "r2"})

	inv, ok := office.Invitation()
	req.True(ok)
	req.Equal(domain.UserID("u3"), inv.User.ID)
	req.Equal(domain.RoomID("r2"), inv.Room.ID)
}
