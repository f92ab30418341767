// Package models contains the persistent entity types of the registry.
package models

import "time"

// SpiritState is the enum governing the spirit lifecycle.
type SpiritState string

const (
	StatePending SpiritState = "pending"
	StateCreated SpiritState = "created"
	StateReady   SpiritState = "ready"
	StateError   SpiritState = "error"
)

// Valid reports whether s is one of the four lifecycle states.
func (s SpiritState) Valid() bool {
	switch s {
	case StatePending, StateCreated, StateReady, StateError:
		return true
	}
	return false
}

// Spirit is a named, state-machine-governed worker entity.
// Spirits are never deleted; they are driven through lifecycle states
// and every mutation leaves a SpiritEvent behind.
type Spirit struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Role      string      `json:"role"`
	State     SpiritState `json:"state"`
	Meta      Document    `json:"meta"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
