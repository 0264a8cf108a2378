package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrNoStoredProfile      = fmt.Errorf("no stored profile")
	ErrDirectoryUnavailable = fmt.Errorf("room directory unavailable")
	ErrEmptyDirectory       = fmt.Errorf("room directory is empty")
	ErrUnknownRoom          = fmt.Errorf("unknown room")
	ErrNotLoggedIn          = fmt.Errorf("session is not logged in")
	ErrChannelClosed        = fmt.Errorf("presence channel is closed")
	ErrNoPendingInvitation  = fmt.Errorf("no pending invitation")
	ErrNoInviteTarget       = fmt.Errorf("no invite target selected")
)
