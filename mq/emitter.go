package mq

import (
	"context"
	"encoding/json"
	"log"

	"craftnest/rdx"
)

// Index represents a domain event to be emitted.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}

const channel = "craftnest-events"

// Emit publishes a domain event to redis. Best effort; the request that
// triggered it has already been persisted.
func Emit(ctx context.Context, eventName string, content Index) {
	payload := map[string]any{
		"event": eventName,
		"data":  content,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("mq: failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq: failed to publish %s event: %v", eventName, err)
	}
}
