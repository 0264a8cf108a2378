// Package sink provides NotificationSink implementations. The core
// decides when and what to notify; sinks decide how it shows up.
package sink

import (
	"fmt"
	"log/slog"
	"office-lab/contract"

	"github.com/gookit/color"
)

// TerminalSink renders notifications on stdout. Dismissal is a no-op
// for a terminal: the line has already scrolled.
type TerminalSink struct {
	log      *slog.Logger
	coloured bool
}

func NewTerminalSink(log *slog.Logger, coloured bool) TerminalSink {
	return TerminalSink{log: log, coloured: coloured}
}

func (s TerminalSink) Notify(message string) contract.DismissFunc {
	line := fmt.Sprintf("  %s", message)
	if s.coloured {
		line = color.New(color.BgBlack, color.FgGreen).Render(line)
	}
	fmt.Println(line)
	return func() {}
}
