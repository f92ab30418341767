package app_test

import (
	"context"
	"testing"

	"github.com/melynxis/solace/internal/apperr"
	"github.com/melynxis/solace/internal/app"
	"github.com/melynxis/solace/internal/ports/primary"
)

func TestRBACCheck(t *testing.T) {
	service := app.NewRBACService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     primary.RBACCheckRequest
		allowed bool
	}{
		{
			name:    "owner can delete",
			req:     primary.RBACCheckRequest{Subject: "owner", Action: "delete", Resource: "registry"},
			allowed: true,
		},
		{
			name:    "reader cannot delete",
			req:     primary.RBACCheckRequest{Subject: "reader", Action: "delete", Resource: "registry"},
			allowed: false,
		},
		{
			name:    "admin cannot delete",
			req:     primary.RBACCheckRequest{Subject: "admin", Action: "delete", Resource: "spirits"},
			allowed: false,
		},
		{
			name:    "reader can read",
			req:     primary.RBACCheckRequest{Subject: "reader", Action: "read", Resource: "spirits"},
			allowed: true,
		},
		{
			name:    "anyone can write",
			req:     primary.RBACCheckRequest{Subject: "maintainer", Action: "write", Resource: "spirits"},
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := service.Check(ctx, tt.req)
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			if allowed != tt.allowed {
				t.Errorf("allowed = %v, want %v", allowed, tt.allowed)
			}
		})
	}
}

func TestRBACCheckValidation(t *testing.T) {
	service := app.NewRBACService()
	ctx := context.Background()

	_, err := service.Check(ctx, primary.RBACCheckRequest{Action: "delete", Resource: "r"})
	if apperr.CodeOf(err) != apperr.CodeValidationFailed {
		t.Error("missing subject must be VALIDATION_FAILED")
	}
}

func TestRBACRoles(t *testing.T) {
	service := app.NewRBACService()

	roles, err := service.Roles(context.Background())
	if err != nil {
		t.Fatalf("Roles failed: %v", err)
	}
	want := []string{"owner", "admin", "maintainer", "reader"}
	if len(roles) != len(want) {
		t.Fatalf("got %d roles, want %d", len(roles), len(want))
	}
	for i, r := range want {
		if roles[i] != r {
			t.Errorf("roles[%d] = %s, want %s", i, roles[i], r)
		}
	}
}
