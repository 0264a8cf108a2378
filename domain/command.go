package domain

type CommandKind string

// Outbound command kinds understood by the presence server.
const (
	CommandEnterRoom  CommandKind = "enter-room"
	CommandInviteUser CommandKind = "invite-user"
)

// Command is an outbound instruction emitted on the presence channel.
// Emission is fire-and-forget: no acknowledgment or delivery report is
// modeled at this layer.
type Command interface {
	Kind() CommandKind
}

// EnterRoomCommand tells the server where to route future events for
// this session.
type EnterRoomCommand struct {
	Room RoomID
}

func (c EnterRoomCommand) Kind() CommandKind { return CommandEnterRoom }

// InviteUserCommand asks the server to call another user into the
// emitter's current room.
type InviteUserCommand struct {
	User UserID
}

func (c InviteUserCommand) Kind() CommandKind { return CommandInviteUser }
