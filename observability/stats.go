// Package observability tracks cheap counters about the event stream,
// for the CLI status line and for debugging routing problems against
// the presence server.
package observability

import (
	"office-lab/domain/event"
	"sync/atomic"
)

// StatsSnapshot is a plain copy for rendering.
type StatsSnapshot struct {
	Synced       uint64 `json:"synced"`
	Joined       uint64 `json:"joined"`
	MeetStarted  uint64 `json:"meet_started"`
	MeetLeft     uint64 `json:"meet_left"`
	Disconnected uint64 `json:"disconnected"`
	Called       uint64 `json:"called"`
}

func (s StatsSnapshot) Total() uint64 {
	return s.Synced + s.Joined + s.MeetStarted + s.MeetLeft + s.Disconnected + s.Called
}

// PresenceStats counts processed events per kind. Consume runs on the
// channel's delivery goroutine, Snapshot on whoever renders, hence the
// atomics.
type PresenceStats struct {
	synced       atomic.Uint64
	joined       atomic.Uint64
	meetStarted  atomic.Uint64
	meetLeft     atomic.Uint64
	disconnected atomic.Uint64
	called       atomic.Uint64
}

func NewPresenceStats() *PresenceStats {
	return &PresenceStats{}
}

func (s *PresenceStats) Consume(e event.PresenceEvent) {
	switch e.EventKind() {
	case event.KindOfficeSynced:
		s.synced.Add(1)
	case event.KindParticipantJoined:
		s.joined.Add(1)
	case event.KindParticipantStartedMeet:
		s.meetStarted.Add(1)
	case event.KindParticipantLeftMeet:
		s.meetLeft.Add(1)
	case event.KindParticipantDisconnect:
		s.disconnected.Add(1)
	case event.KindParticipantCalled:
		s.called.Add(1)
	}
}

func (s *PresenceStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Synced:       s.synced.Load(),
		Joined:       s.joined.Load(),
		MeetStarted:  s.meetStarted.Load(),
		MeetLeft:     s.meetLeft.Load(),
		Disconnected: s.disconnected.Load(),
		Called:       s.called.Load(),
	}
}
