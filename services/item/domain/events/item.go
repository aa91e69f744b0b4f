package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the topic published when an Item is persisted.
const TopicItemCreated = "item.created"

// ItemCreatedEvent is published after a new Item row is committed.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      uuid.UUID `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}
