package events

import (
	"time"

	"github.com/google/uuid"
)

// Envelope is the canonical event shape published on the in-process bus.
type Envelope struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	SourceService  string    `json:"source_service"`
	OccurredAtUTC  time.Time `json:"occurred_at_utc"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	PayloadVersion int       `json:"payload_version"`
	Payload        any       `json:"payload"`
}

// New builds an envelope with a fresh event id and version 1 payload.
func New(eventType, entityType, entityID string, occurredAt time.Time, payload any) Envelope {
	return Envelope{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SourceService:  "clawdrop",
		OccurredAtUTC:  occurredAt.UTC(),
		EntityType:     entityType,
		EntityID:       entityID,
		PayloadVersion: 1,
		Payload:        payload,
	}
}
