package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/narwhalmedia/marquee/pkg/events"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
)

// Envelope is the JSON body of a forwarded state change.
type Envelope struct {
	Slice      string    `json:"slice"`
	Action     string    `json:"action"`
	Phase      string    `json:"phase"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Forwarder publishes state changes from an event bus to NATS subjects
// named <prefix>.<slice>.
type Forwarder struct {
	client *Client
	prefix string
	logger interfaces.Logger
}

// NewForwarder creates a forwarder publishing under prefix.
func NewForwarder(client *Client, prefix string, logger interfaces.Logger) *Forwarder {
	return &Forwarder{
		client: client,
		prefix: prefix,
		logger: logger.WithFields(interfaces.String("component", "nats-forwarder")),
	}
}

// Attach subscribes the forwarder to bus.
func (f *Forwarder) Attach(bus interfaces.EventBus) error {
	return bus.Subscribe(events.TypeStateChanged, f)
}

// EventType returns the handled event type.
func (f *Forwarder) EventType() string {
	return events.TypeStateChanged
}

// Handle publishes one state change.
func (f *Forwarder) Handle(ctx context.Context, event interfaces.Event) error {
	payload := event.Payload()
	slice, _ := payload[events.KeySlice].(string)
	action, _ := payload[events.KeyAction].(string)
	phase, _ := payload[events.KeyPhase].(string)

	envelope := Envelope{
		Slice:      slice,
		Action:     action,
		Phase:      phase,
		OccurredAt: time.Unix(0, event.Timestamp()).UTC(),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal state change: %w", err)
	}

	subject := f.Subject(slice)
	if err := f.client.nc.Publish(subject, data); err != nil {
		f.logger.Error("failed to publish state change",
			interfaces.Error(err),
			interfaces.String("subject", subject),
			interfaces.String("action", action))
		return fmt.Errorf("failed to publish state change: %w", err)
	}

	f.logger.Debug("state change published",
		interfaces.String("subject", subject),
		interfaces.String("action", action),
		interfaces.String("phase", phase))
	return nil
}

// Subject returns the subject for slice.
func (f *Forwarder) Subject(slice string) string {
	return fmt.Sprintf("%s.%s", f.prefix, slice)
}
