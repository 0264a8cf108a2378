// Package event defines the typed presence events delivered by the
// channel. Events are facts observed by the server; they carry no
// behavior and are consumed by the reconciler only.
package event

import (
	"office-lab/domain"

	"github.com/google/uuid"
)

type Kind string

// Inbound event kinds, matching the wire names of the presence server.
const (
	KindOfficeSynced           Kind = "sync-office"
	KindParticipantJoined      Kind = "participant-joined"
	KindParticipantStartedMeet Kind = "participant-started-meet"
	KindParticipantLeftMeet    Kind = "participant-left-meet"
	KindParticipantDisconnect  Kind = "disconnect"
	KindParticipantCalled      Kind = "participant-is-called"
)

// Kinds lists every inbound kind the reconciler subscribes to.
func Kinds() []Kind {
	return []Kind{
		KindOfficeSynced,
		KindParticipantJoined,
		KindParticipantStartedMeet,
		KindParticipantLeftMeet,
		KindParticipantDisconnect,
		KindParticipantCalled,
	}
}

type PresenceEvent interface {
	EventKind() Kind
}

// OfficeSynced is the authoritative snapshot of everyone online,
// already carrying each user's room. It fully replaces prior
// membership; it is never merged.
type OfficeSynced struct {
	ID          uuid.UUID
	UsersInRoom []domain.User
}

func (OfficeSynced) EventKind() Kind { return KindOfficeSynced }

type ParticipantJoined struct {
	ID   uuid.UUID
	User domain.User
	Room domain.RoomID
}

func (ParticipantJoined) EventKind() Kind { return KindParticipantJoined }

// ParticipantStartedMeet marks a user as sitting in the active meeting
// of a room. Meeting may be empty on older servers; consumers fall back
// to the room id then (one ad-hoc meeting per room).
type ParticipantStartedMeet struct {
	ID      uuid.UUID
	User    domain.User
	Room    domain.RoomID
	Meeting string
}

func (ParticipantStartedMeet) EventKind() Kind { return KindParticipantStartedMeet }

type ParticipantLeftMeet struct {
	ID   uuid.UUID
	User domain.User
	Room domain.RoomID
}

func (ParticipantLeftMeet) EventKind() Kind { return KindParticipantLeftMeet }

type ParticipantDisconnected struct {
	ID   uuid.UUID
	User domain.UserID
}

func (ParticipantDisconnected) EventKind() Kind { return KindParticipantDisconnect }

// ParticipantCalled is an incoming call-to-join for the local user.
type ParticipantCalled struct {
	ID   uuid.UUID
	User domain.User
	Room domain.RoomID
}

func (ParticipantCalled) EventKind() Kind { return KindParticipantCalled }
