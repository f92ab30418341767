package app

import (
	"context"
	"strings"

	"github.com/melynxis/solace/internal/apperr"
	"github.com/melynxis/solace/internal/ports/primary"
)

// RBACServiceImpl implements primary.RBACService. The only enforced
// rule today: the delete action is denied unless subject is "owner".
type RBACServiceImpl struct{}

// NewRBACService creates the stub RBAC decider.
func NewRBACService() *RBACServiceImpl {
	return &RBACServiceImpl{}
}

// Check evaluates the subject/action/resource triple.
func (s *RBACServiceImpl) Check(_ context.Context, req primary.RBACCheckRequest) (bool, error) {
	if strings.TrimSpace(req.Subject) == "" {
		return false, apperr.New(apperr.CodeValidationFailed, "subject is required")
	}
	if strings.TrimSpace(req.Action) == "" {
		return false, apperr.New(apperr.CodeValidationFailed, "action is required")
	}
	if strings.TrimSpace(req.Resource) == "" {
		return false, apperr.New(apperr.CodeValidationFailed, "resource is required")
	}

	allowed := !(req.Action == "delete" && req.Subject != "owner")
	return allowed, nil
}

// Roles lists the known role names.
func (s *RBACServiceImpl) Roles(_ context.Context) ([]string, error) {
	return []string{"owner", "admin", "maintainer", "reader"}, nil
}

// Ensure RBACServiceImpl implements the interface
var _ primary.RBACService = (*RBACServiceImpl)(nil)
