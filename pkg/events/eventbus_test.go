package events_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/marquee/pkg/events"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/logger"
)

func TestInMemoryEventBus_PublishOrder(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoopLogger())
	var seen []string

	failing := &events.HandlerFunc{Type: "state.changed", Fn: func(ctx context.Context, e interfaces.Event) error {
		seen = append(seen, "failing")
		return errors.New("boom")
	}}
	recording := &events.HandlerFunc{Type: "state.changed", Fn: func(ctx context.Context, e interfaces.Event) error {
		seen = append(seen, e.Payload()["slice"].(string))
		return nil
	}}

	require.NoError(t, bus.Subscribe("state.changed", failing))
	require.NoError(t, bus.Subscribe("state.changed", recording))

	err := bus.Publish(context.Background(), events.NewEvent("state.changed", map[string]interface{}{"slice": "reviews"}))

	assert.NoError(t, err)
	assert.Equal(t, []string{"failing", "reviews"}, seen)
}

func TestInMemoryEventBus_UnsubscribeAndAsync(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoopLogger())
	var calls int32

	handler := &events.HandlerFunc{Type: "state.changed", Fn: func(ctx context.Context, e interfaces.Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}}
	require.NoError(t, bus.Subscribe("state.changed", handler))

	bus.PublishAsync(context.Background(), events.NewEvent("state.changed", nil))
	require.NoError(t, bus.Stop())
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	require.NoError(t, bus.Unsubscribe("state.changed", handler))
	require.NoError(t, bus.Publish(context.Background(), events.NewEvent("state.changed", nil)))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}
