package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"office-lab/domain"
	"office-lab/services"
	"office-lab/state"
	"strings"
)

// InputWorker reads collaborator commands from stdin and forwards them
// to the presence service. It is the CLI stand-in for the UI surface.
type InputWorker struct {
	log     *slog.Logger
	office  *state.Office
	service *services.PresenceService
	in      io.Reader
	out     io.Writer
}

func NewInputWorker(log *slog.Logger, office *state.Office, service *services.PresenceService,
	in io.Reader, out io.Writer) *InputWorker {
	return &InputWorker{log: log, office: office, service: service, in: in, out: out}
}

// Run pumps input lines on a separate goroutine so cancellation is
// never stuck behind a blocked read. The pump goroutine itself only
// exits when the reader closes, which for stdin is process exit.
func (w *InputWorker) Run(ctx context.Context) error {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(w.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line := <-lines:
			w.handle(strings.Fields(strings.TrimSpace(line)))
		case err := <-errs:
			// Input closed: retire the worker, the render loop keeps going.
			return err
		}
	}
}

func (w *InputWorker) handle(args []string) {
	if len(args) == 0 {
		return
	}
	switch args[0] {
	case "join":
		if len(args) < 2 {
			fmt.Fprintln(w.out, "usage: join <room-id>")
			return
		}
		w.report(w.service.EnterRoom(domain.RoomID(args[1])))
	case "invite":
		if len(args) < 2 {
			fmt.Fprintln(w.out, "usage: invite <user-id>")
			return
		}
		w.invite(domain.UserID(args[1]))
	case "send":
		w.report(w.service.OutgoingInvite().Confirm())
	case "cancel":
		w.service.OutgoingInvite().Close()
	case "accept":
		w.report(w.service.AcceptInvitation())
	case "dismiss":
		w.service.DismissInvitation()
	case "filter":
		switch len(args) {
		case 1:
			fmt.Fprintln(w.out, "usage: filter <key> <value> | filter off")
		case 2:
			// 'filter off' and any other single arg clear the filter.
			w.service.ChangeUsersFilter("", "")
		default:
			w.service.ChangeUsersFilter(args[1], strings.Join(args[2:], " "))
		}
	case "help":
		fmt.Fprintln(w.out, "commands: join <room-id> | invite <user-id> | send | cancel | accept | dismiss | filter <key> <value> | filter off")
	default:
		fmt.Fprintf(w.out, "unknown command %q, try 'help'\n", args[0])
	}
}

// invite opens the outgoing dialog for a user visible in the current
// snapshot.
func (w *InputWorker) invite(id domain.UserID) {
	for _, u := range w.office.Snapshot().Users {
		if u.ID == id {
			w.service.OutgoingInvite().Select(u)
			fmt.Fprintf(w.out, "inviting %s (type 'send' to confirm or 'cancel')\n", u.Name)
			return
		}
	}
	fmt.Fprintf(w.out, "no online user with id %q\n", id)
}

func (w *InputWorker) report(err error) {
	if err != nil {
		fmt.Fprintf(w.out, "error: %v\n", err)
	}
}
