package mq

import (
	"context"
	"encoding/json"
	"log"

	"antojos/rdx"
)

// Event is a commerce event published for interested consumers
// (dashboards, audit tooling).
type Event struct {
	EntityType string `json:"entity_type"` // "product" | "order"
	Method     string `json:"method"`      // "POST" | "PUT" | "DELETE"
	EntityId   string `json:"entity_id"`
	Detail     string `json:"detail,omitempty"` // e.g. new order status
}

const channel = "commerce-events"

// Emit publishes an event to Redis pub/sub. Delivery is best effort;
// failures are logged and dropped.
func Emit(eventName string, content Event) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}
	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartEventLogger consumes the commerce channel and logs every event.
// It blocks, so run it in its own goroutine.
func StartEventLogger() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[EventLogger] Listening for commerce events...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventLogger] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[EventLogger] %s %s %s %s", event.Method, event.EntityType, event.EntityId, event.Detail)
	}
}
