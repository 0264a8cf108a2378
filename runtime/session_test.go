package runtime

import (
	"context"
	"log/slog"
	"office-lab/domain"
	"office-lab/domain/event"
	apperrors "office-lab/errors"
	"office-lab/mocks"
	"office-lab/state"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T, channel *mocks.MockEventChannel) *Session {
	t.Helper()
	office := state.NewOffice(slog.Default())
	notifier := NewNotifier(slog.Default(), &recordingSink{}, 10*time.Millisecond)
	reconciler := NewReconciler(slog.Default(), office, notifier)
	return NewSession(slog.Default(), channel, reconciler, notifier)
}

func TestSession_Open_SubscribesEveryKind(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := mocks.NewMockEventChannel(ctrl)
	handle := mocks.NewMockChannelHandle(ctrl)
	session := newTestSession(t, channel)

	rooms := []domain.Room{{ID: "r1", Name: "Lobby"}}
	channel.EXPECT().Open(gomock.Any(), rooms).Return(handle, nil)
	handle.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Times(len(event.Kinds()))

	err := session.Open(context.Background(), Resolution{Rooms: rooms, Current: rooms[0]})
	req.NoError(err)
}

func TestSession_Open_AnnouncesFallbackRoomExactlyOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := mocks.NewMockEventChannel(ctrl)
	handle := mocks.NewMockChannelHandle(ctrl)
	session := newTestSession(t, channel)

	rooms := []domain.Room{{ID: "r1", Name: "Lobby"}}
	channel.EXPECT().Open(gomock.Any(), rooms).Return(handle, nil)
	handle.EXPECT().Subscribe(gomock.Any(), gomock.Any()).AnyTimes()
	handle.EXPECT().Emit(domain.EnterRoomCommand{Room: "r1"}).Return(nil).Times(1)

	err := session.Open(context.Background(), Resolution{Rooms: rooms, Current: rooms[0], NeedsEnter: true})
	req.NoError(err)
}

func TestSession_Open_ObserversSubscribeAfterReconciler(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := mocks.NewMockEventChannel(ctrl)
	handle := mocks.NewMockChannelHandle(ctrl)
	session := newTestSession(t, channel)
	session.Observe(func(e event.PresenceEvent) {})

	rooms := []domain.Room{{ID: "r1", Name: "Lobby"}}
	channel.EXPECT().Open(gomock.Any(), rooms).Return(handle, nil)
	// Reconciler once per kind, plus the observer once per kind.
	handle.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Times(2 * len(event.Kinds()))

	req.NoError(session.Open(context.Background(), Resolution{Rooms: rooms, Current: rooms[0]}))
}

func TestSession_EmitBeforeOpenFails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := newTestSession(t, mocks.NewMockEventChannel(ctrl))

	err := session.Emit(domain.EnterRoomCommand{Room: "r1"})
	req.ErrorIs(err, apperrors.ErrNotLoggedIn)

	_, err = session.CurrentRoomID()
	req.ErrorIs(err, apperrors.ErrNotLoggedIn)
}

func TestSession_Close_TearsDownExactlyOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := mocks.NewMockEventChannel(ctrl)
	handle := mocks.NewMockChannelHandle(ctrl)
	session := newTestSession(t, channel)

	rooms := []domain.Room{{ID: "r1", Name: "Lobby"}}
	channel.EXPECT().Open(gomock.Any(), rooms).Return(handle, nil)
	handle.EXPECT().Subscribe(gomock.Any(), gomock.Any()).AnyTimes()
	handle.EXPECT().Close().Return(nil).Times(1)

	req.NoError(session.Open(context.Background(), Resolution{Rooms: rooms, Current: rooms[0]}))

	req.NoError(session.Close())
	// Second close must not reach the handle again.
	req.NoError(session.Close())

	// The channel is gone: commands fail fast.
	err := session.Emit(domain.EnterRoomCommand{Room: "r1"})
	req.ErrorIs(err, apperrors.ErrNotLoggedIn)
}
