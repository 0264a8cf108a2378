package runtime

import (
	"fmt"
	"log/slog"
	"office-lab/contract"
	"office-lab/domain"
	"office-lab/domain/event"
	"office-lab/state"
)

// Reconciler translates inbound presence events into state mutations.
//
// Handlers run sequentially on the channel's delivery goroutine, one
// event at a time, so each mutation is atomic with respect to the
// others. Handlers never block: the debounced notifier is the only
// deferred side effect.
type Reconciler struct {
	log      *slog.Logger
	office   *state.Office
	notifier *Notifier
}

func NewReconciler(log *slog.Logger, office *state.Office, notifier *Notifier) *Reconciler {
	return &Reconciler{log: log, office: office, notifier: notifier}
}

// Attach registers the handler for every inbound kind on an open
// handle. Registration is scoped to one login session: a reopened
// channel needs a fresh Attach, and Close on the handle tears the
// registrations down.
func (r *Reconciler) Attach(handle contract.ChannelHandle) {
	for _, kind := range event.Kinds() {
		handle.Subscribe(kind, r.Handle)
	}
}

func (r *Reconciler) Handle(e event.PresenceEvent) {
	switch evt := e.(type) {
	case event.OfficeSynced:
		// Authoritative snapshot: last writer wins over any join
		// tracked before it arrived.
		r.office.SyncOffice(evt.UsersInRoom)
	case event.ParticipantJoined:
		r.onJoined(evt)
	case event.ParticipantStartedMeet:
		r.onStartedMeet(evt)
	case event.ParticipantLeftMeet:
		r.office.ClearUserMeeting(evt.User.ID)
	case event.ParticipantDisconnected:
		r.office.RemoveUser(evt.User)
	case event.ParticipantCalled:
		r.onCalled(evt)
	default:
		r.log.Debug(fmt.Sprintf("Unhandled presence event : %v", e))
	}
}

func (r *Reconciler) onJoined(evt event.ParticipantJoined) {
	room, ok := r.office.Room(evt.Room)
	if !ok {
		r.log.Warn("Join for a room missing from the directory, ignoring",
			"user", evt.User.ID, "room", evt.Room)
		return
	}
	r.office.UpsertUser(evt.User, evt.Room)

	// Notify only for someone else arriving in the room we are viewing.
	// Current user and room are read here, at call time, so the
	// debounced closure never captures stale state.
	current, hasUser := r.office.CurrentUser()
	viewing, hasRoom := r.office.CurrentRoom()
	if !hasUser || !hasRoom {
		return
	}
	if evt.User.ID != current.ID && viewing.ID == evt.Room {
		r.notifier.Notify(fmt.Sprintf("%s entered the %s.", evt.User.Name, room.Name))
	}
}

func (r *Reconciler) onStartedMeet(evt event.ParticipantStartedMeet) {
	if _, ok := r.office.Room(evt.Room); !ok {
		r.log.Warn("Meeting start for a room missing from the directory, ignoring",
			"user", evt.User.ID, "room", evt.Room)
		return
	}
	meeting := evt.Meeting
	if meeting == "" {
		// One ad-hoc meeting per room: the room id identifies it.
		meeting = string(evt.Room)
	}
	r.office.SetUserMeeting(evt.User, evt.Room, meeting)
}

func (r *Reconciler) onCalled(evt event.ParticipantCalled) {
	room, ok := r.office.Room(evt.Room)
	if !ok {
		// The source behavior here was undefined; treating the event
		// as malformed keeps the invitation flow out of a room the
		// directory never mentioned.
		r.log.Warn("Invitation for a room missing from the directory, ignoring",
			"user", evt.User.ID, "room", evt.Room)
		return
	}
	r.office.SetInvitation(domain.Invitation{User: evt.User, Room: room})
}
