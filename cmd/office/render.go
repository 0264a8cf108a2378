package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"office-lab/observability"
	"office-lab/projection"
	"office-lab/state"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const recentActivityLines = 5

// RenderWorker redraws the office view whenever state changes, plus a
// periodic refresh so the activity log and counters never look stale.
type RenderWorker struct {
	log      *slog.Logger
	office   *state.Office
	activity *projection.Activity
	stats    *observability.PresenceStats
	interval time.Duration
	out      io.Writer
}

func NewRenderWorker(log *slog.Logger, office *state.Office, activity *projection.Activity,
	stats *observability.PresenceStats, interval time.Duration, out io.Writer) *RenderWorker {
	return &RenderWorker{log: log, office: office, activity: activity, stats: stats, interval: interval, out: out}
}

func (w *RenderWorker) Run(ctx context.Context) error {
	// Unregister on exit so supervised restarts do not pile up dead
	// watcher entries.
	updates, unwatch := w.office.Watch(8)
	defer unwatch()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.render(w.office.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-updates:
			w.render(snap)
		case <-ticker.C:
			w.render(w.office.Snapshot())
		}
	}
}

func (w *RenderWorker) render(snap state.Snapshot) {
	if snap.Loading {
		fmt.Fprintln(w.out, "Loading...")
		return
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.statusLine(snap))

	table := tablewriter.NewWriter(w.out)
	table.SetHeader([]string{"User", "Room", "Meeting"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	roomNames := make(map[string]string, len(snap.Rooms))
	for _, r := range snap.Rooms {
		roomNames[string(r.ID)] = r.Name
	}

	for _, u := range snap.FilteredUsers() {
		meeting := ""
		if u.InMeeting() {
			meeting = "yes"
		}
		name, ok := roomNames[string(u.RoomID)]
		if !ok {
			name = string(u.RoomID)
		}
		table.Append([]string{u.Name, name, meeting})
	}
	table.Render()

	if snap.Invitation != nil {
		fmt.Fprintf(w.out, "%s invites you to join %s (type 'accept' or 'dismiss')\n",
			snap.Invitation.User.Name, snap.Invitation.Room.Name)
	}

	entries := w.activity.Entries()
	if len(entries) > recentActivityLines {
		entries = entries[len(entries)-recentActivityLines:]
	}
	for _, e := range entries {
		fmt.Fprintf(w.out, "  %s  %s\n", e.At.Format(time.TimeOnly), e.Text)
	}
}

func (w *RenderWorker) statusLine(snap state.Snapshot) string {
	who := "-"
	if snap.CurrentUser != nil {
		who = snap.CurrentUser.Name
	}
	where := "-"
	if snap.CurrentRoom != nil {
		where = snap.CurrentRoom.Name
	}
	counts := w.stats.Snapshot()
	line := fmt.Sprintf("%s @ %s | %d online | %d events", who, where, len(snap.Users), counts.Total())
	if !snap.UsersFilter.IsZero() {
		line += fmt.Sprintf(" | filter %s=%s", snap.UsersFilter.Key, snap.UsersFilter.Value)
	}
	return color.New(color.FgCyan).Render(line)
}
