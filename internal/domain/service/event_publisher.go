package service

import (
	"context"
	"time"
)

// MarketEvent is the envelope published on entity lifecycle changes (link
// decisions, order transitions, chat activity). Consumers include analytics
// pipelines and notification workers.
type MarketEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       string            `json:"type"`                 // constants.Event*
	EntityID   string            `json:"entity_id"`
	SupplierID string            `json:"supplier_id,omitempty"`
	ConsumerID string            `json:"consumer_id,omitempty"`
	ActorID    string            `json:"actor_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message bus.
type EventPublisher interface {
	// PublishMarketEvent publishes a lifecycle event for async processing.
	PublishMarketEvent(ctx context.Context, event *MarketEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
