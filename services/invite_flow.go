package services

import (
	"office-lab/domain"
	apperrors "office-lab/errors"
	"sync"
)

type InviteState string

const (
	InviteIdle      InviteState = "idle"
	InviteModalOpen InviteState = "modal-open"
	InviteSent      InviteState = "sent"
)

// OutgoingInvite models the invite dialog: Idle until a target is
// selected, ModalOpen while the dialog shows, Sent once the command
// went out. The target's room is implicit: the server uses the
// emitter's current room. No acknowledgment is modeled.
type OutgoingInvite struct {
	mu     sync.Mutex
	state  InviteState
	target *domain.User
	emit   func(domain.Command) error
}

func newOutgoingInvite(emit func(domain.Command) error) *OutgoingInvite {
	return &OutgoingInvite{state: InviteIdle, emit: emit}
}

// Select opens the dialog for a target user. Selecting while already
// open retargets the dialog.
func (o *OutgoingInvite) Select(u domain.User) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = InviteModalOpen
	o.target = &u
}

// Close returns to Idle from any state and forgets the target.
func (o *OutgoingInvite) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = InviteIdle
	o.target = nil
}

// Confirm emits the invite-user command for the selected target.
// Fire-and-forget: on emission failure the dialog stays open so the
// user may retry.
func (o *OutgoingInvite) Confirm() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != InviteModalOpen || o.target == nil {
		return apperrors.ErrNoInviteTarget
	}
	if err := o.emit(domain.InviteUserCommand{User: o.target.ID}); err != nil {
		return err
	}
	o.state = InviteSent
	return nil
}

func (o *OutgoingInvite) State() InviteState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *OutgoingInvite) Target() (domain.User, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.target == nil {
		return domain.User{}, false
	}
	return *o.target, true
}
