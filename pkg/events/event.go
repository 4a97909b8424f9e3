package events

import (
	"time"
)

// TypeStateChanged is published after a state slice applies an action.
const TypeStateChanged = "state.changed"

// Payload keys of a TypeStateChanged event.
const (
	KeySlice  = "slice"
	KeyAction = "action"
	KeyPhase  = "phase"
)

// NewStateChanged builds a TypeStateChanged event.
func NewStateChanged(slice, action, phase string) *BaseEvent {
	return NewEvent(TypeStateChanged, map[string]interface{}{
		KeySlice:  slice,
		KeyAction: action,
		KeyPhase:  phase,
	})
}

// BaseEvent is a basic implementation of the Event interface
type BaseEvent struct {
	Type string                 `json:"type"`
	Time int64                  `json:"timestamp"`
	Data map[string]interface{} `json:"data"`
}

// NewEvent creates a new event
func NewEvent(eventType string, data map[string]interface{}) *BaseEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &BaseEvent{
		Type: eventType,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

// EventType returns the type of the event
func (e *BaseEvent) EventType() string {
	return e.Type
}

// Timestamp returns when the event occurred
func (e *BaseEvent) Timestamp() int64 {
	return e.Time
}

// Payload returns the event attributes
func (e *BaseEvent) Payload() map[string]interface{} {
	return e.Data
}
