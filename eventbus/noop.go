package eventbus

import "context"

// NoopPublisher is used when KAFKA_BROKERS is unset. The application
// behaves identically; only the reconciler loses its trigger.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, topic string, event Event) error { return nil }

func (NoopPublisher) Close() {}
