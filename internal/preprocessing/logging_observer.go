package preprocessing

import (
	"context"
	"log/slog"
)

// LoggingObserver logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer.
// A nil logger falls back to slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	switch event.Type {
	case EventFillError:
		level = slog.LevelWarn
	case EventFillEnd, EventVerifyEnd:
		level = slog.LevelInfo
	}

	lo.logger.Log(context.Background(), level, "cleaning_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"table", event.Table,
		"column", event.Column,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
