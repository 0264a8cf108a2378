// Package state owns the presence data model. All writes go through
// the mutation methods below (used by the reconciler and bootstrap);
// readers get deep-copied snapshots or a watch channel. Nothing in
// here talks to the network.
package state

import (
	"log/slog"
	"office-lab/domain"
	"sort"
	"sync"
)

// Snapshot is an immutable read model of the office at one point in
// time. Users are sorted by name then id so renderings are stable.
type Snapshot struct {
	Rooms       []domain.Room
	Users       []domain.User
	CurrentUser *domain.User
	CurrentRoom *domain.Room
	UsersFilter domain.UsersFilter
	Invitation  *domain.Invitation
	Err         error
	LoggedIn    bool
	Loading     bool
}

// FilteredUsers applies the local view filter.
func (s Snapshot) FilteredUsers() []domain.User {
	if s.UsersFilter.IsZero() {
		return s.Users
	}
	var out []domain.User
	for _, u := range s.Users {
		if s.UsersFilter.Match(u) {
			out = append(out, u)
		}
	}
	return out
}

// UsersInRoom derives room membership from the user set.
func (s Snapshot) UsersInRoom(id domain.RoomID) []domain.User {
	var out []domain.User
	for _, u := range s.Users {
		if u.RoomID == id {
			out = append(out, u)
		}
	}
	return out
}

// Office is the single owner of presence state for one session.
//
// Mutations are atomic with respect to each other; the reconciler runs
// them from the channel's delivery goroutine while collaborators read
// snapshots from their own goroutines, hence the lock.
type Office struct {
	mu          sync.RWMutex
	log         *slog.Logger
	rooms       []domain.Room
	roomIndex   map[domain.RoomID]domain.Room
	users       map[domain.UserID]domain.User
	currentUser *domain.User
	currentRoom *domain.Room
	filter      domain.UsersFilter
	invitation  *domain.Invitation
	err         error
	loggedIn    bool
	loading     bool
	watchers    []chan Snapshot
}

func NewOffice(log *slog.Logger) *Office {
	return &Office{
		log:       log,
		roomIndex: make(map[domain.RoomID]domain.Room),
		users:     make(map[domain.UserID]domain.User),
		loading:   true,
	}
}

// Watch registers a change listener. Every committed mutation publishes
// one snapshot. Delivery is best-effort: a slow watcher loses
// intermediate snapshots, never blocks a mutation. The returned func
// unregisters the watcher; calling it more than once is safe.
func (o *Office) Watch(buffer int) (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, buffer)
	o.mu.Lock()
	o.watchers = append(o.watchers, ch)
	o.mu.Unlock()

	var once sync.Once
	unwatch := func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			for i, w := range o.watchers {
				if w == ch {
					o.watchers = append(o.watchers[:i], o.watchers[i+1:]...)
					return
				}
			}
		})
	}
	return ch, unwatch
}

func (o *Office) SetCurrentUser(u domain.User) {
	o.mu.Lock()
	o.currentUser = &u
	o.publishLocked()
	o.mu.Unlock()
}

// SetRooms stores the directory snapshot fetched at bootstrap.
func (o *Office) SetRooms(rooms []domain.Room) {
	o.mu.Lock()
	o.rooms = append([]domain.Room(nil), rooms...)
	o.roomIndex = make(map[domain.RoomID]domain.Room, len(rooms))
	for _, r := range rooms {
		o.roomIndex[r.ID] = r
	}
	o.publishLocked()
	o.mu.Unlock()
}

func (o *Office) SetCurrentRoom(r domain.Room) {
	o.mu.Lock()
	o.currentRoom = &r
	o.publishLocked()
	o.mu.Unlock()
}

func (o *Office) MarkLoggedIn() {
	o.mu.Lock()
	o.loggedIn = true
	o.publishLocked()
	o.mu.Unlock()
}

func (o *Office) EndLoading() {
	o.mu.Lock()
	o.loading = false
	o.publishLocked()
	o.mu.Unlock()
}

// SetError records the session-fatal fault. The subsystem is
// display-only from here on; nothing clears the error.
func (o *Office) SetError(err error) {
	o.mu.Lock()
	o.err = err
	o.publishLocked()
	o.mu.Unlock()
}

// SyncOffice replaces the whole online set with the server snapshot.
// Last snapshot wins; nothing is merged with prior state.
func (o *Office) SyncOffice(users []domain.User) {
	o.mu.Lock()
	o.users = make(map[domain.UserID]domain.User, len(users))
	for _, u := range users {
		o.users[u.ID] = u
	}
	o.publishLocked()
	o.mu.Unlock()
}

// UpsertUser places a user into a room, replacing any prior record
// with the same id. Duplicate joins are therefore idempotent.
func (o *Office) UpsertUser(u domain.User, room domain.RoomID) {
	o.mu.Lock()
	u.RoomID = room
	o.users[u.ID] = u
	o.publishLocked()
	o.mu.Unlock()
}

// RemoveUser drops a user from the online set entirely. Removing an
// unknown user is a no-op.
func (o *Office) RemoveUser(id domain.UserID) {
	o.mu.Lock()
	delete(o.users, id)
	o.publishLocked()
	o.mu.Unlock()
}

// SetUserMeeting marks a user as sitting in a meeting. An unknown user
// is upserted first so a racing join is not lost.
func (o *Office) SetUserMeeting(u domain.User, room domain.RoomID, meeting string) {
	o.mu.Lock()
	stored, ok := o.users[u.ID]
	if !ok {
		stored = u
		stored.RoomID = room
	}
	stored.MeetingID = meeting
	o.users[u.ID] = stored
	o.publishLocked()
	o.mu.Unlock()
}

// ClearUserMeeting clears a user's meeting mark. No-op for unknown
// users.
func (o *Office) ClearUserMeeting(id domain.UserID) {
	o.mu.Lock()
	if stored, ok := o.users[id]; ok {
		stored.MeetingID = ""
		o.users[id] = stored
	}
	o.publishLocked()
	o.mu.Unlock()
}

// SetInvitation replaces any pending invitation: last one wins.
func (o *Office) SetInvitation(inv domain.Invitation) {
	o.mu.Lock()
	o.invitation = &inv
	o.publishLocked()
	o.mu.Unlock()
}

func (o *Office) ClearInvitation() {
	o.mu.Lock()
	o.invitation = nil
	o.publishLocked()
	o.mu.Unlock()
}

func (o *Office) ChangeUsersFilter(key, value string) {
	o.mu.Lock()
	o.filter = domain.UsersFilter{Key: key, Value: value}
	o.publishLocked()
	o.mu.Unlock()
}

// Room resolves a room id against the held directory snapshot.
func (o *Office) Room(id domain.RoomID) (domain.Room, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	r, ok := o.roomIndex[id]
	return r, ok
}

func (o *Office) Rooms() []domain.Room {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]domain.Room(nil), o.rooms...)
}

func (o *Office) CurrentUser() (domain.User, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.currentUser == nil {
		return domain.User{}, false
	}
	return *o.currentUser, true
}

func (o *Office) CurrentRoom() (domain.Room, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.currentRoom == nil {
		return domain.Room{}, false
	}
	return *o.currentRoom, true
}

func (o *Office) Invitation() (domain.Invitation, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.invitation == nil {
		return domain.Invitation{}, false
	}
	return *o.invitation, true
}

func (o *Office) LoggedIn() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.loggedIn
}

func (o *Office) Err() error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.err
}

func (o *Office) Snapshot() Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snapshotLocked()
}

func (o *Office) snapshotLocked() Snapshot {
	snap := Snapshot{
		Rooms:       append([]domain.Room(nil), o.rooms...),
		Users:       make([]domain.User, 0, len(o.users)),
		UsersFilter: o.filter,
		Err:         o.err,
		LoggedIn:    o.loggedIn,
		Loading:     o.loading,
	}
	for _, u := range o.users {
		snap.Users = append(snap.Users, u)
	}
	sort.Slice(snap.Users, func(i, j int) bool {
		if snap.Users[i].Name != snap.Users[j].Name {
			return snap.Users[i].Name < snap.Users[j].Name
		}
		return snap.Users[i].ID < snap.Users[j].ID
	})
	if o.currentUser != nil {
		u := *o.currentUser
		snap.CurrentUser = &u
	}
	if o.currentRoom != nil {
		r := *o.currentRoom
		snap.CurrentRoom = &r
	}
	if o.invitation != nil {
		inv := *o.invitation
		snap.Invitation = &inv
	}
	return snap
}

// publishLocked fans the fresh snapshot out to watchers without ever
// blocking the mutating goroutine.
func (o *Office) publishLocked() {
	if len(o.watchers) == 0 {
		return
	}
	snap := o.snapshotLocked()
	for _, ch := range o.watchers {
		select {
		case ch <- snap:
		default:
			o.log.Debug("State watcher lagging, snapshot dropped")
		}
	}
}
