// Package services exposes the command-emitting entry points the
// collaborator UI calls: switching rooms, inviting users, answering
// invitations, changing the local filter. Reads go through state
// snapshots; writes go through here.
package services

import (
	"fmt"
	"log/slog"
	"office-lab/contract"
	"office-lab/domain"
	apperrors "office-lab/errors"
	"office-lab/runtime"
	"office-lab/state"
)

type PresenceService struct {
	log       *slog.Logger
	office    *state.Office
	session   *runtime.Session
	store     contract.SessionStore
	navigator contract.Navigator
	outgoing  *OutgoingInvite
}

func NewPresenceService(log *slog.Logger, office *state.Office, session *runtime.Session,
	store contract.SessionStore, navigator contract.Navigator) *PresenceService {
	s := &PresenceService{
		log:       log,
		office:    office,
		session:   session,
		store:     store,
		navigator: navigator,
	}
	s.outgoing = newOutgoingInvite(session.Emit)
	return s
}

// EnterRoom switches the local view to a known room and tells the
// server where to route future events. The new room id is persisted
// so the next bootstrap resumes into it.
func (s *PresenceService) EnterRoom(id domain.RoomID) error {
	if !s.office.LoggedIn() {
		return apperrors.ErrNotLoggedIn
	}
	room, ok := s.office.Room(id)
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownRoom, id)
	}

	s.office.SetCurrentRoom(room)
	if err := s.session.Emit(domain.EnterRoomCommand{Room: id}); err != nil {
		return err
	}
	if err := s.store.SaveLastRoomID(id); err != nil {
		// Losing the resume position is not worth failing the switch.
		s.log.Warn("Could not persist last room id", "room", id, "error", err)
	}
	return nil
}

// OutgoingInvite returns the session's invite dialog state machine.
func (s *PresenceService) OutgoingInvite() *OutgoingInvite {
	return s.outgoing
}

// AcceptInvitation confirms the pending incoming invitation: the
// session enters the invitation's room, the collaborator's view is
// navigated there, and the invitation is cleared.
func (s *PresenceService) AcceptInvitation() error {
	inv, ok := s.office.Invitation()
	if !ok {
		return apperrors.ErrNoPendingInvitation
	}
	if err := s.session.Emit(domain.EnterRoomCommand{Room: inv.Room.ID}); err != nil {
		return err
	}
	s.office.SetCurrentRoom(inv.Room)
	s.office.ClearInvitation()
	if err := s.store.SaveLastRoomID(inv.Room.ID); err != nil {
		s.log.Warn("Could not persist last room id", "room", inv.Room.ID, "error", err)
	}
	s.navigator.NavigateToRoom(inv.Room.ID)
	return nil
}

// DismissInvitation clears the pending invitation without emitting
// anything. Dismissing when nothing is pending is a no-op.
func (s *PresenceService) DismissInvitation() {
	s.office.ClearInvitation()
}

// ChangeUsersFilter updates the local-only view filter.
func (s *PresenceService) ChangeUsersFilter(key, value string) {
	s.office.ChangeUsersFilter(key, value)
}
