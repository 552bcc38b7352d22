package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Routing keys of the domain events.
const (
	EventStoreCreated = "store.created"
	EventStoreDeleted = "store.deleted"
	EventItemCreated  = "item.created"
	EventItemUpdated  = "item.updated"
	EventItemDeleted  = "item.deleted"
)

// EventPublisher delivers an encoded event under a routing key.
// *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Event is the JSON payload published for every inventory change.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	StoreID    uint      `json:"store_id,omitempty"`
	Price      *float64  `json:"price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publish sends an event if a publisher is configured. Failures are logged,
// never returned: the database write has already been committed.
func publish(p EventPublisher, eventType, name string, storeID uint, price *float64) {
	if p == nil {
		return
	}
	body, err := json.Marshal(Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Name:       name,
		StoreID:    storeID,
		Price:      price,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := p.Publish(eventType, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for %s: %v", eventType, name, err)
	}
}
