package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"office-lab/contract"
	"office-lab/domain"
	"office-lab/domain/event"
	apperrors "office-lab/errors"
	"sync"
)

// Session owns the login-scoped resources: the open channel handle,
// the reconciler's subscriptions and the debounce timer. All of them
// are released exactly once by Close, however many events arrived.
type Session struct {
	log        *slog.Logger
	channel    contract.EventChannel
	reconciler *Reconciler
	notifier   *Notifier

	mu        sync.Mutex
	handle    contract.ChannelHandle
	observers []contract.HandlerFunc
	closeOnce sync.Once
}

func NewSession(log *slog.Logger, channel contract.EventChannel, reconciler *Reconciler, notifier *Notifier) *Session {
	return &Session{log: log, channel: channel, reconciler: reconciler, notifier: notifier}
}

// Observe registers a read-only listener for every inbound event
// kind, delivered after the reconciler has applied its mutation.
// Must be called before Open.
func (s *Session) Observe(fn contract.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Open connects the channel scoped to the resolved room set and wires
// the reconciler to it. When bootstrap fell back to the first room,
// the enter-room command is issued here, exactly once, now that a
// connection exists to carry it.
func (s *Session) Open(ctx context.Context, res Resolution) error {
	handle, err := s.channel.Open(ctx, res.Rooms)
	if err != nil {
		return fmt.Errorf("opening presence channel: %w", err)
	}

	s.mu.Lock()
	s.handle = handle
	observers := append([]contract.HandlerFunc(nil), s.observers...)
	s.mu.Unlock()

	// Subscription order matters: the reconciler mutates first, then
	// observers see the event with state already reconciled.
	s.reconciler.Attach(handle)
	for _, fn := range observers {
		for _, kind := range event.Kinds() {
			handle.Subscribe(kind, fn)
		}
	}

	if res.NeedsEnter {
		if err := handle.Emit(domain.EnterRoomCommand{Room: res.Current.ID}); err != nil {
			s.log.Warn("Could not announce fallback room", "room", res.Current.ID, "error", err)
		}
	}
	return nil
}

// Emit sends a command on the session's channel. Fire-and-forget:
// callers needing delivery guarantees must build retry above this.
func (s *Session) Emit(cmd domain.Command) error {
	s.mu.Lock()
	handle := s.handle
	s.mu.Unlock()
	if handle == nil {
		return apperrors.ErrNotLoggedIn
	}
	return handle.Emit(cmd)
}

// CurrentRoomID reports the room the server last routed this session
// into, as tracked by the channel.
func (s *Session) CurrentRoomID() (domain.RoomID, error) {
	s.mu.Lock()
	handle := s.handle
	s.mu.Unlock()
	if handle == nil {
		return "", apperrors.ErrNotLoggedIn
	}
	return handle.CurrentRoomID(), nil
}

// Close tears the session down: debounce timer first so no
// notification fires after the channel is gone, then the handle with
// every subscription on it. Safe to call from any goroutine and more
// than once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.notifier.Stop()

		s.mu.Lock()
		handle := s.handle
		s.handle = nil
		s.mu.Unlock()

		if handle != nil {
			err = handle.Close()
		}
		s.log.Info("Presence session closed")
	})
	return err
}
