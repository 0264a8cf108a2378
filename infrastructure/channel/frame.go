package channel

import (
	"encoding/json"
	"fmt"
	"office-lab/domain"
	"office-lab/domain/event"

	"github.com/google/uuid"
)

// frame is the wire envelope in both directions: a kind discriminator
// plus the kind-specific payload.
type frame struct {
	ID      uuid.UUID       `json:"id"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

type syncOfficePayload struct {
	UsersInRoom []domain.User `json:"usersInRoom"`
}

type participantPayload struct {
	User      domain.User   `json:"user"`
	RoomID    domain.RoomID `json:"roomId"`
	MeetingID string        `json:"meetingId,omitempty"`
}

type disconnectPayload struct {
	UserID domain.UserID `json:"userId"`
}

type enterRoomPayload struct {
	RoomID domain.RoomID `json:"roomId"`
}

type inviteUserPayload struct {
	UserID domain.UserID `json:"userId"`
}

// decodeEvent turns an inbound frame into its typed event.
func decodeEvent(f frame) (event.PresenceEvent, error) {
	switch event.Kind(f.Kind) {
	case event.KindOfficeSynced:
		var p syncOfficePayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			return nil, err
		}
		return event.OfficeSynced{ID: f.ID, UsersInRoom: p.UsersInRoom}, nil
	case event.KindParticipantJoined:
		var p participantPayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			return nil, err
		}
		return event.ParticipantJoined{ID: f.ID, User: p.User, Room: p.RoomID}, nil
	case event.KindParticipantStartedMeet:
		var p participantPayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			return nil, err
		}
		return event.ParticipantStartedMeet{ID: f.ID, User: p.User, Room: p.RoomID, Meeting: p.MeetingID}, nil
	case event.KindParticipantLeftMeet:
		var p participantPayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			return nil, err
		}
		return event.ParticipantLeftMeet{ID: f.ID, User: p.User, Room: p.RoomID}, nil
	case event.KindParticipantDisconnect:
		var p disconnectPayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			return nil, err
		}
		return event.ParticipantDisconnected{ID: f.ID, User: p.UserID}, nil
	case event.KindParticipantCalled:
		var p participantPayload
		if err := json.Unmarshal(f.Payload, &p); err != nil {
			return nil, err
		}
		return event.ParticipantCalled{ID: f.ID, User: p.User, Room: p.RoomID}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", f.Kind)
	}
}

// encodeCommand wraps an outbound command into a frame.
func encodeCommand(cmd domain.Command) (frame, error) {
	var payload any
	switch c := cmd.(type) {
	case domain.EnterRoomCommand:
		payload = enterRoomPayload{RoomID: c.Room}
	case domain.InviteUserCommand:
		payload = inviteUserPayload{UserID: c.User}
	default:
		return frame{}, fmt.Errorf("unknown command kind %q", cmd.Kind())
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return frame{}, err
	}
	return frame{ID: uuid.New(), Kind: string(cmd.Kind()), Payload: raw}, nil
}
