package main

import (
	"log/slog"
	"office-lab/domain"
)

// terminalNavigator is the CLI's view router: there is no page to
// push, so navigation is just announced. A real UI would swap views
// here.
type terminalNavigator struct {
	log *slog.Logger
}

func (n terminalNavigator) NavigateToRoom(id domain.RoomID) {
	n.log.Info("Now viewing room", "room", id)
}
