package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"office-lab/contract"
	"office-lab/domain"
	apperrors "office-lab/errors"
	"office-lab/state"

	"github.com/samber/lo"
)

// Resolution is the outcome of a successful bootstrap: the directory
// snapshot, the room the session resumes into, and whether the
// fallback was taken (in which case the server must be told with an
// enter-room command once the channel is open).
type Resolution struct {
	Rooms      []domain.Room
	Current    domain.Room
	NeedsEnter bool
}

// Bootstrap establishes a consistent initial state on connect.
//
// No retry happens here: a directory failure is terminal for the
// session and is recorded as the Error display state. The only
// recovery is a manual restart of the client.
type Bootstrap struct {
	log       *slog.Logger
	store     contract.SessionStore
	directory contract.RoomDirectory
	office    *state.Office
}

func NewBootstrap(log *slog.Logger, store contract.SessionStore, directory contract.RoomDirectory, office *state.Office) *Bootstrap {
	return &Bootstrap{log: log, store: store, directory: directory, office: office}
}

// Run resolves the stored session against the room directory.
//
// ErrNoStoredProfile means "not logged in": the caller redirects out
// of the presence subsystem and the office state is left untouched.
// Any other error has already been recorded on the office as the
// terminal fault state.
func (b *Bootstrap) Run(ctx context.Context) (Resolution, error) {
	if !b.store.IsProfileStored() {
		return Resolution{}, apperrors.ErrNoStoredProfile
	}

	profile, err := b.store.Profile()
	if err != nil {
		return Resolution{}, b.fail(fmt.Errorf("reading stored profile: %w", err))
	}
	// Optimistic: the profile is trusted before the directory answers.
	b.office.SetCurrentUser(profile.User())

	// The directory client owns the ErrDirectoryUnavailable sentinel;
	// only context is added here.
	rooms, err := b.directory.Rooms(ctx)
	if err != nil {
		return Resolution{}, b.fail(fmt.Errorf("fetching room directory: %w", err))
	}
	if len(rooms) == 0 {
		return Resolution{}, b.fail(apperrors.ErrEmptyDirectory)
	}

	lastID, err := b.store.LastRoomID()
	if err != nil {
		// A corrupt last-room entry only costs the resume position.
		b.log.Warn("Could not read last room id, falling back to first room", "error", err)
	}

	current, found := lo.Find(rooms, func(r domain.Room) bool { return r.ID == lastID })
	if !found {
		// First run or stale id: resume into the first room and let
		// the server know, since it never saw this session there.
		current = rooms[0]
	}

	b.office.SetRooms(rooms)
	b.office.SetCurrentRoom(current)
	b.office.MarkLoggedIn()
	b.office.EndLoading()

	return Resolution{Rooms: rooms, Current: current, NeedsEnter: !found}, nil
}

// fail converts a bootstrap error into the terminal display state and
// ends the loading phase without marking the session logged in.
func (b *Bootstrap) fail(err error) error {
	b.log.Error("Bootstrap failed", "error", err)
	b.office.SetError(err)
	b.office.EndLoading()
	return err
}
