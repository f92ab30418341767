// Package spirit contains the pure business rules for the spirit
// lifecycle. No I/O here, only functions over values.
package spirit

import (
	"fmt"
	"strings"

	"github.com/melynxis/solace/internal/models"
)

// allowedTransitions is the closed lifecycle table. Any pair not listed
// is illegal, including self-transitions.
var allowedTransitions = map[models.SpiritState][]models.SpiritState{
	models.StatePending: {models.StateCreated, models.StateError},
	models.StateCreated: {models.StateReady, models.StateError},
	models.StateReady:   {models.StateError},
	models.StateError:   {models.StatePending, models.StateCreated},
}

// GuardResult is the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// InitialState is the state a spirit is inserted with. Creation
// immediately advances it to StateCreated in the same transaction, so
// pending is never externally observable.
func InitialState() models.SpiritState {
	return models.StatePending
}

// CanTransition evaluates the lifecycle table for a requested move.
// Rejections carry the attempted pair for diagnostics.
func CanTransition(current, requested models.SpiritState) GuardResult {
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return GuardResult{Allowed: true}
		}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("illegal transition %s -> %s", current, requested),
	}
}

// ValidateCreate checks the required fields for spirit creation.
func ValidateCreate(name, role string) GuardResult {
	if strings.TrimSpace(name) == "" {
		return GuardResult{Allowed: false, Reason: "name is required"}
	}
	if strings.TrimSpace(role) == "" {
		return GuardResult{Allowed: false, Reason: "role is required"}
	}
	return GuardResult{Allowed: true}
}

// ValidatePatch requires at least one mutable field to be provided.
func ValidatePatch(name *string, meta models.Document) GuardResult {
	if name == nil && meta == nil {
		return GuardResult{Allowed: false, Reason: "no changes provided"}
	}
	return GuardResult{Allowed: true}
}
