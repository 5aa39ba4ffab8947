package service

import (
	"context"
)

// Collection names used in change events and remote replica paths.
const (
	CollectionUsers    = "users"
	CollectionPatients = "patients"
)

// CollectionEvent describes a collection-changed broadcast for downstream
// consumers such as dashboards or reporting pipelines.
type CollectionEvent struct {
	Collection string `json:"collection"`           // "users" or "patients".
	Records    int    `json:"records"`              // Collection size after the change.
	Origin     string `json:"origin"`               // Which side produced the change event.
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing.
}

// EventPublisher defines the interface for publishing collection-changed
// events to a message queue.
type EventPublisher interface {
	// PublishCollectionEvent publishes one collection-changed event.
	PublishCollectionEvent(ctx context.Context, event *CollectionEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
