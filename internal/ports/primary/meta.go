package primary

import "context"

// RBACService is the authorization boundary. Decisions are returned
// in-band; callers decide whether to enforce them.
type RBACService interface {
	Check(ctx context.Context, req RBACCheckRequest) (bool, error)
	Roles(ctx context.Context) ([]string, error)
}

// RBACCheckRequest names the subject/action/resource triple to check.
type RBACCheckRequest struct {
	Subject  string `json:"subject"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
}

// HealthService reports store connectivity for liveness and readiness.
type HealthService interface {
	Check(ctx context.Context) error
}
