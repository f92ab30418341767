package models

import "time"

// EventType classifies one audit record on a spirit.
type EventType string

const (
	EventCreate      EventType = "create"
	EventStateChange EventType = "state_change"
	EventNameUpdate  EventType = "name_update"
	EventMetaUpdate  EventType = "meta_update"
)

// SpiritEvent is one immutable audit record. Events are appended in the
// same transaction as the spirit mutation they document and are never
// updated or deleted.
type SpiritEvent struct {
	ID        int64        `json:"id"`
	SpiritID  int64        `json:"spirit_id"`
	EventType EventType    `json:"event_type"`
	PrevState *SpiritState `json:"prev_state,omitempty"`
	NewState  *SpiritState `json:"new_state,omitempty"`
	Note      *string      `json:"note,omitempty"`
	Meta      Document     `json:"meta,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
