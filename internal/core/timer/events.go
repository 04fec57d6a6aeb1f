package timer

import "time"

// EventType defines the type of engine event.
type EventType string

const (
	// EventStateChange fires when the countdown starts or pauses.
	EventStateChange EventType = "state_change"
	// EventProgress fires when the remaining time changes.
	EventProgress EventType = "progress"
	// EventTaskName fires when the task name is edited.
	EventTaskName EventType = "task_name"
	// EventComplete fires once per finished countdown.
	EventComplete EventType = "complete"
)

// Snapshot is a copy of the timer state at the moment an event was emitted.
type Snapshot struct {
	TaskName  string
	Remaining int
	Running   bool
}

// Display returns the remaining time as MM:SS.
func (snapshot Snapshot) Display() string {
	return FormatRemaining(snapshot.Remaining)
}

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	Message  string
	At       time.Time
}
