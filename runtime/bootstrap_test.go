package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"office-lab/domain"
	apperrors "office-lab/errors"
	"office-lab/mocks"
	"office-lab/state"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var directoryRooms = []domain.Room{
	{ID: "r1", Name: "Lobby"},
	{ID: "r2", Name: "War Room"},
	{ID: "r3", Name: "Quiet Room"},
}

func TestBootstrap_ResumesIntoLastKnownRoom(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSessionStore(ctrl)
	dir := mocks.NewMockRoomDirectory(ctrl)
	office := state.NewOffice(slog.Default())

	store.EXPECT().IsProfileStored().Return(true)
	store.EXPECT().Profile().Return(domain.Profile{UserID: "me", Name: "Me"}, nil)
	store.EXPECT().LastRoomID().Return(domain.RoomID("r2"), nil)
	dir.EXPECT().Rooms(gomock.Any()).Return(directoryRooms, nil)

	res, err := NewBootstrap(slog.Default(), store, dir, office).Run(context.Background())

	req.NoError(err)
	req.Equal(domain.RoomID("r2"), res.Current.ID)
	// Known room: the server already routes here, no enter-room needed.
	req.False(res.NeedsEnter)

	current, ok := office.CurrentRoom()
	req.True(ok)
	req.Equal(domain.RoomID("r2"), current.ID)
	req.True(office.LoggedIn())
	req.False(office.Snapshot().Loading)
}

func TestBootstrap_StaleRoomIDFallsBackToFirstRoom(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSessionStore(ctrl)
	dir := mocks.NewMockRoomDirectory(ctrl)
	office := state.NewOffice(slog.Default())

	store.EXPECT().IsProfileStored().Return(true)
	store.EXPECT().Profile().Return(domain.Profile{UserID: "me", Name: "Me"}, nil)
	store.EXPECT().LastRoomID().Return(domain.RoomID("r9"), nil)
	dir.EXPECT().Rooms(gomock.Any()).Return(directoryRooms, nil)

	res, err := NewBootstrap(slog.Default(), store, dir, office).Run(context.Background())

	req.NoError(err)
	req.Equal(domain.RoomID("r1"), res.Current.ID)
	req.True(res.NeedsEnter)
}

func TestBootstrap_NoStoredProfileRedirectsOut(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSessionStore(ctrl)
	dir := mocks.NewMockRoomDirectory(ctrl)
	office := state.NewOffice(slog.Default())

	store.EXPECT().IsProfileStored().Return(false)
	// The directory is never contacted without a profile.
	dir.EXPECT().Rooms(gomock.Any()).Times(0)

	_, err := NewBootstrap(slog.Default(), store, dir, office).Run(context.Background())

	req.ErrorIs(err, apperrors.ErrNoStoredProfile)
	// Not an error state: the caller redirects to login instead.
	req.NoError(office.Err())
	req.False(office.LoggedIn())
}

func TestBootstrap_DirectoryFailureIsTerminal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSessionStore(ctrl)
	dir := mocks.NewMockRoomDirectory(ctrl)
	office := state.NewOffice(slog.Default())

	store.EXPECT().IsProfileStored().Return(true)
	store.EXPECT().Profile().Return(domain.Profile{UserID: "me", Name: "Me"}, nil)
	// The directory client is the sole owner of the sentinel.
	dirErr := fmt.Errorf("%w: status 503", apperrors.ErrDirectoryUnavailable)
	dir.EXPECT().Rooms(gomock.Any()).Return(nil, dirErr)

	_, err := NewBootstrap(slog.Default(), store, dir, office).Run(context.Background())

	req.Error(err)
	req.ErrorIs(err, apperrors.ErrDirectoryUnavailable)
	// Context is added exactly once, without re-wrapping the sentinel.
	req.Equal("fetching room directory: "+dirErr.Error(), err.Error())

	snap := office.Snapshot()
	req.Error(snap.Err)
	req.False(snap.LoggedIn)
	req.False(snap.Loading)
	// The optimistic current user assignment already happened.
	req.NotNil(snap.CurrentUser)
}

func TestBootstrap_EmptyDirectoryIsTerminal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSessionStore(ctrl)
	dir := mocks.NewMockRoomDirectory(ctrl)
	office := state.NewOffice(slog.Default())

	store.EXPECT().IsProfileStored().Return(true)
	store.EXPECT().Profile().Return(domain.Profile{UserID: "me", Name: "Me"}, nil)
	dir.EXPECT().Rooms(gomock.Any()).Return([]domain.Room{}, nil)

	_, err := NewBootstrap(slog.Default(), store, dir, office).Run(context.Background())

	req.ErrorIs(err, apperrors.ErrEmptyDirectory)
	req.Error(office.Err())
	req.False(office.LoggedIn())
}

func TestBootstrap_CorruptLastRoomOnlyCostsResumePosition(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSessionStore(ctrl)
	dir := mocks.NewMockRoomDirectory(ctrl)
	office := state.NewOffice(slog.Default())

	store.EXPECT().IsProfileStored().Return(true)
	store.EXPECT().Profile().Return(domain.Profile{UserID: "me", Name: "Me"}, nil)
	store.EXPECT().LastRoomID().Return(domain.RoomID(""), fmt.Errorf("corrupt entry"))
	dir.EXPECT().Rooms(gomock.Any()).Return(directoryRooms, nil)

	res, err := NewBootstrap(slog.Default(), store, dir, office).Run(context.Background())

	req.NoError(err)
	req.Equal(domain.RoomID("r1"), res.Current.ID)
	req.True(res.NeedsEnter)
	req.True(office.LoggedIn())
}
