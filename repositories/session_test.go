package repositories

import (
	"log/slog"
	"office-lab/domain"
	apperrors "office-lab/errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestSessionRepository_ProfileRoundTrip(t *testing.T) {
	req := require.New(t)
	repo := NewSessionRepository(openTestDB(t), slog.Default())

	req.False(repo.IsProfileStored())
	_, err := repo.Profile()
	req.ErrorIs(err, apperrors.ErrNoStoredProfile)

	profile := domain.Profile{UserID: "u1", Name: "Alice"}
	req.NoError(repo.SaveProfile(profile))

	req.True(repo.IsProfileStored())
	stored, err := repo.Profile()
	req.NoError(err)
	req.Equal(profile, stored)
}

func TestSessionRepository_RejectsIncompleteProfile(t *testing.T) {
	req := require.New(t)
	repo := NewSessionRepository(openTestDB(t), slog.Default())

	// Missing name fails validation before anything hits the store.
	err := repo.SaveProfile(domain.Profile{UserID: "u1"})
	req.Error(err)
	req.False(repo.IsProfileStored())
}

func TestSessionRepository_RejectsIncompleteStoredProfileOnRead(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewSessionRepository(db, slog.Default())

	// An older client version may have stored a decodable but partial
	// profile; the read path must reject it too.
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKey), []byte(`{"userId":"u1"}`))
	}))

	_, err := repo.Profile()
	req.Error(err)
	req.Contains(err.Error(), "incomplete")
}

func TestSessionRepository_LastRoomID(t *testing.T) {
	req := require.New(t)
	repo := NewSessionRepository(openTestDB(t), slog.Default())

	// First run: empty, not an error.
	id, err := repo.LastRoomID()
	req.NoError(err)
	req.Empty(id)

	req.NoError(repo.SaveLastRoomID("r2"))
	id, err = repo.LastRoomID()
	req.NoError(err)
	req.Equal(domain.RoomID("r2"), id)

	// The resume position follows the latest switch.
	req.NoError(repo.SaveLastRoomID("r3"))
	id, err = repo.LastRoomID()
	req.NoError(err)
	req.Equal(domain.RoomID("r3"), id)
}

func TestSessionRepository_ClearWipesWholeSession(t *testing.T) {
	req := require.New(t)
	repo := NewSessionRepository(openTestDB(t), slog.Default())

	req.NoError(repo.SaveProfile(domain.Profile{UserID: "u1", Name: "Alice"}))
	req.NoError(repo.SaveLastRoomID("r2"))

	req.NoError(repo.Clear())

	req.False(repo.IsProfileStored())
	id, err := repo.LastRoomID()
	req.NoError(err)
	req.Empty(id)
}
