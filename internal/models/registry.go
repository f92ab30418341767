package models

import "time"

// RegistryService is a dependent service's connection/config record.
// Unlike Spirit, its status is caller-asserted free text and is not
// governed by the state machine.
type RegistryService struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Config      Document   `json:"config"`
	AuthMode    string     `json:"auth_mode"`
	Status      string     `json:"status"`
	LastCheckin *time.Time `json:"last_checkin,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
