//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"office-lab/domain"
	"office-lab/domain/event"
	"reflect"
)

// SessionStore exposes the locally persisted identity. The presence
// core only reads it; writes happen on the login surface and when the
// user switches rooms (PresenceService).
type SessionStore interface {
	IsProfileStored() bool
	Profile() (domain.Profile, error)
	LastRoomID() (domain.RoomID, error)
	SaveLastRoomID(id domain.RoomID) error
}

// RoomDirectory returns the rooms the current user may access.
// Any failure is session-fatal for the caller: no retry happens below
// this interface.
type RoomDirectory interface {
	Rooms(ctx context.Context) ([]domain.Room, error)
}

type HandlerFunc func(e event.PresenceEvent)

// EventChannel opens a presence connection scoped to the known room
// set, so the server routes only relevant updates. Exactly one open
// handle exists per logged-in session.
type EventChannel interface {
	Open(ctx context.Context, rooms []domain.Room) (ChannelHandle, error)
}

// ChannelHandle is an owned subscription handle. Events of one room
// arrive in order; no ordering holds across rooms. Close is idempotent
// and tears down every subscription registered on the handle.
type ChannelHandle interface {
	Subscribe(kind event.Kind, fn HandlerFunc)
	Emit(cmd domain.Command) error
	CurrentRoomID() domain.RoomID
	Close() error
}

type DismissFunc func()

// NotificationSink receives display strings and hands back a dismiss
// handle. The core decides when and what to notify, never how it is
// rendered.
type NotificationSink interface {
	Notify(message string) DismissFunc
}

// Navigator is the collaborator's view router, invoked when accepting
// an invitation moves the session into another room.
type Navigator interface {
	NavigateToRoom(id domain.RoomID)
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
