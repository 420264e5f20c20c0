package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventStep EventType = "step"
	EventHalt EventType = "halt"
)

// StepEvent is emitted after every executed step.
type StepEvent struct {
	Timestamp time.Time  `json:"timestamp"`
	Type      EventType  `json:"type"`
	Index     int        `json:"index"`
	Result    StepResult `json:"result"`
}

// HaltEvent is emitted once, when the machine reaches a terminal status.
type HaltEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Status    Status    `json:"status"`
	Steps     int       `json:"steps"`
}

// LifecycleHooks defines callbacks for machine observability.
// Hooks run synchronously on the stepping goroutine; keep them cheap.
type LifecycleHooks struct {
	OnStep func(*StepEvent)
	OnHalt func(*HaltEvent)
}
