// Package runtime drives the presence protocol: session resolution at
// startup, event reconciliation while logged in, and teardown of the
// login-scoped resources. It orchestrates the state package without
// containing rendering or transport logic.
package runtime

import (
	"log/slog"
	"office-lab/contract"
	"sync"
	"time"
)

// NotifyDebounce is the trailing debounce window for join
// notifications. Coalescing at this granularity is part of the
// protocol contract, not a tuning knob.
const NotifyDebounce = 500 * time.Millisecond

// Notifier coalesces display notifications with a trailing debounce:
// rapid successive calls collapse to the most recent message only, so
// a bulk sync does not turn into a notification storm. One Notifier is
// shared for the whole session; the last call wins.
type Notifier struct {
	mu      sync.Mutex
	log     *slog.Logger
	sink    contract.NotificationSink
	delay   time.Duration
	timer   *time.Timer
	gen     uint64
	pending string
	stopped bool
}

func NewNotifier(log *slog.Logger, sink contract.NotificationSink, delay time.Duration) *Notifier {
	return &Notifier{log: log, sink: sink, delay: delay}
}

// Notify schedules message for delivery after the debounce window.
// A call within the window supersedes the previous message and
// restarts the window.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		n.log.Debug("Notifier already stopped, dropping message")
		return
	}
	n.pending = message
	n.gen++
	gen := n.gen
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.delay, func() { n.fire(gen) })
}

// fire delivers the pending message unless a newer Notify or a Stop
// superseded this timer while it was in flight.
func (n *Notifier) fire(gen uint64) {
	n.mu.Lock()
	if n.stopped || gen != n.gen {
		n.mu.Unlock()
		return
	}
	message := n.pending
	n.pending = ""
	n.mu.Unlock()

	// The dismiss handle belongs to whoever renders the notification.
	_ = n.sink.Notify(message)
}

// Stop releases the timer. It is safe to call more than once; no
// message is delivered after Stop returns.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopped = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
