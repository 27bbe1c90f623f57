package preprocessing

import "time"

// EventType represents different lifecycle phases of a cleaning run
type EventType string

const (
	EventFillStart EventType = "fill_start"
	EventFillEnd   EventType = "fill_end"
	EventFillError EventType = "fill_error"
	EventVerifyEnd EventType = "verify_end"
)

// Event represents a lifecycle event in a cleaning run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run ID for tracing
	Table     string      // Table being cleaned
	Column    string      // Target column, empty for table-wide phases
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (median, fill count, error)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
