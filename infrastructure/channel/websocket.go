// Package channel implements the presence event channel over a
// websocket connection. One reader goroutine delivers events
// sequentially, which is what makes the reconciler's mutations atomic
// with respect to each other.
package channel

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"office-lab/contract"
	"office-lab/domain"
	"office-lab/domain/event"
	apperrors "office-lab/errors"
	"sync"

	"github.com/gorilla/websocket"
)

// WebsocketChannel dials the presence endpoint. The server guarantees
// in-order delivery per room on one connection; nothing is guaranteed
// across rooms or across reconnects.
type WebsocketChannel struct {
	endpoint string
	dialer   *websocket.Dialer
	log      *slog.Logger
}

func NewWebsocketChannel(endpoint string, log *slog.Logger) *WebsocketChannel {
	return &WebsocketChannel{endpoint: endpoint, dialer: websocket.DefaultDialer, log: log}
}

// Open connects and scopes the subscription to the known room set, so
// the server only routes updates for relevant rooms.
func (c *WebsocketChannel) Open(ctx context.Context, rooms []domain.Room) (contract.ChannelHandle, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid channel endpoint: %w", err)
	}
	q := u.Query()
	for _, room := range rooms {
		q.Add("room", string(room.ID))
	}
	u.RawQuery = q.Encode()

	conn, _, err := c.dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dialing presence endpoint: %w", err)
	}

	h := &wsHandle{
		log:  c.log,
		conn: conn,
		subs: make(map[event.Kind][]contract.HandlerFunc),
		done: make(chan struct{}),
	}
	go h.readLoop()
	return h, nil
}

type wsHandle struct {
	log  *slog.Logger
	conn *websocket.Conn

	mu          sync.RWMutex
	subs        map[event.Kind][]contract.HandlerFunc
	currentRoom domain.RoomID

	writeMu   sync.Mutex
	closeOnce sync.Once
	done      chan struct{}
}

func (h *wsHandle) Subscribe(kind event.Kind, fn contract.HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[kind] = append(h.subs[kind], fn)
}

func (h *wsHandle) Emit(cmd domain.Command) error {
	select {
	case <-h.done:
		return apperrors.ErrChannelClosed
	default:
	}

	f, err := encodeCommand(cmd)
	if err != nil {
		return err
	}

	h.writeMu.Lock()
	err = h.conn.WriteJSON(f)
	h.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("emitting %s: %w", cmd.Kind(), err)
	}

	if enter, ok := cmd.(domain.EnterRoomCommand); ok {
		h.mu.Lock()
		h.currentRoom = enter.Room
		h.mu.Unlock()
	}
	return nil
}

func (h *wsHandle) CurrentRoomID() domain.RoomID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.currentRoom
}

// Close tears down the connection and, with it, every subscription
// registered on this handle. Idempotent.
func (h *wsHandle) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.done)
		err = h.conn.Close()
	})
	return err
}

// readLoop is the single delivery goroutine: frames are decoded and
// handed to subscribers one at a time, preserving arrival order.
func (h *wsHandle) readLoop() {
	for {
		var f frame
		if err := h.conn.ReadJSON(&f); err != nil {
			select {
			case <-h.done:
				// Expected: Close interrupted the read.
			default:
				h.log.Warn("Presence channel read failed", "error", err)
				_ = h.Close()
			}
			return
		}

		evt, err := decodeEvent(f)
		if err != nil {
			// Malformed frames are recoverable: log and move on.
			h.log.Warn("Dropping malformed presence frame", "kind", f.Kind, "error", err)
			continue
		}
		h.dispatch(evt)
	}
}

func (h *wsHandle) dispatch(evt event.PresenceEvent) {
	h.mu.RLock()
	handlers := append([]contract.HandlerFunc(nil), h.subs[evt.EventKind()]...)
	h.mu.RUnlock()
	for _, fn := range handlers {
		fn(evt)
	}
}
