package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"office-lab/domain"
	apperrors "office-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
)

// Keys live under a single prefix so a viewer can scan the whole
// session namespace in one pass.
const (
	profileKey  = "session:profile"
	lastRoomKey = "session:last-room"
)

// SessionRepository persists the local session identity in BadgerDB:
// the stored profile and the id of the last room entered. The
// presence core reads both at bootstrap; writes come from the login
// surface and from room switches.
type SessionRepository struct {
	db       *badger.DB
	log      *slog.Logger
	validate *validator.Validate
}

func NewSessionRepository(db *badger.DB, log *slog.Logger) SessionRepository {
	return SessionRepository{db: db, log: log, validate: validator.New()}
}

func (r SessionRepository) IsProfileStored() bool {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(profileKey))
		return err
	})
	return err == nil
}

// Profile reads and validates the stored identity. The store is a
// trust boundary shared with older client versions, so a decodable
// but incomplete profile is rejected rather than propagated.
func (r SessionRepository) Profile() (domain.Profile, error) {
	raw, err := r.get(profileKey)
	if err != nil {
		return domain.Profile{}, err
	}
	if raw == nil {
		return domain.Profile{}, apperrors.ErrNoStoredProfile
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("decoding stored profile: %w", err)
	}
	if err := r.validate.Struct(profile); err != nil {
		r.log.Warn("Rejecting stored profile", "error", err)
		return domain.Profile{}, fmt.Errorf("stored profile is incomplete: %w", err)
	}
	return profile, nil
}

// LastRoomID returns the persisted resume position, or empty when the
// session never entered a room (first run).
func (r SessionRepository) LastRoomID() (domain.RoomID, error) {
	raw, err := r.get(lastRoomKey)
	if err != nil || raw == nil {
		return "", err
	}
	return domain.RoomID(raw), nil
}

func (r SessionRepository) SaveProfile(profile domain.Profile) error {
	if err := r.validate.Struct(profile); err != nil {
		return fmt.Errorf("refusing to store incomplete profile: %w", err)
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKey), raw)
	})
}

func (r SessionRepository) SaveLastRoomID(id domain.RoomID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(lastRoomKey), []byte(id))
	})
}

// Clear wipes the stored session, used on logout.
func (r SessionRepository) Clear() error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(profileKey)); err != nil {
			return err
		}
		return txn.Delete([]byte(lastRoomKey))
	})
}

// get returns nil without error when the key does not exist.
func (r SessionRepository) get(key string) ([]byte, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
