package sink

import (
	"log/slog"
	"office-lab/contract"
)

// LogSink routes notifications to the structured log, for headless
// runs where nobody watches stdout.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (s LogSink) Notify(message string) contract.DismissFunc {
	s.log.Info("Notification", "message", message)
	return func() {}
}
