// Package eventbus carries advisory domain events (dream and analysis
// lifecycle) over Kafka. Events are best-effort: consumers recompute from
// authoritative storage, so a lost event delays reconciliation rather
// than corrupting state.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Event is the payload envelope for every message on the bus.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewEvent wraps a payload value into an Event with a fresh id.
func NewEvent(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal event payload: %w", err)
	}
	return Event{
		ID:      uuid.NewString(),
		Type:    eventType,
		Payload: data,
	}, nil
}

// Handler processes one consumed event.
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}
