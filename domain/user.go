// Package domain contains core concepts of the virtual office.
// This file defines User entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

type UserID string

// User is one online participant of the office.
// RoomID always references a room known to the directory snapshot.
// MeetingID is empty unless the user currently sits in an active meeting.
type User struct {
	ID        UserID `json:"id"`
	Name      string `json:"name"`
	RoomID    RoomID `json:"roomId"`
	MeetingID string `json:"meetingId,omitempty"`
}

func (u User) InMeeting() bool {
	return u.MeetingID != ""
}
