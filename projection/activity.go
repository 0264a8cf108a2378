// Package projection builds local views from observed presence
// events. Handles ordering and capping. Does not emit events or
// interact with UI directly.
package projection

import (
	"fmt"
	"office-lab/domain/event"
	"sync"
	"time"
)

type Entry struct {
	At   time.Time
	Text string
}

// Activity is a capped local log of presence happenings, fed from the
// channel alongside the reconciler. Oldest entries fall off first.
type Activity struct {
	mu      sync.Mutex
	cap     int
	entries []Entry
}

func NewActivity(cap int) *Activity {
	return &Activity{cap: cap}
}

func (a *Activity) Consume(e event.PresenceEvent) {
	var text string
	switch evt := e.(type) {
	case event.ParticipantJoined:
		text = fmt.Sprintf("%s joined room %s", evt.User.Name, evt.Room)
	case event.ParticipantStartedMeet:
		text = fmt.Sprintf("%s started a meeting in room %s", evt.User.Name, evt.Room)
	case event.ParticipantLeftMeet:
		text = fmt.Sprintf("%s left the meeting in room %s", evt.User.Name, evt.Room)
	case event.ParticipantDisconnected:
		text = fmt.Sprintf("%s went offline", evt.User)
	case event.ParticipantCalled:
		text = fmt.Sprintf("%s invited you to room %s", evt.User.Name, evt.Room)
	default:
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, Entry{At: time.Now(), Text: text})
	if a.cap > 0 && len(a.entries) > a.cap {
		a.entries = a.entries[len(a.entries)-a.cap:]
	}
}

func (a *Activity) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Entry(nil), a.entries...)
}
