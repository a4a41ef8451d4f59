package services

import (
	"context"
	"testing"

	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
)

func TestAllowlistAuthorizer(t *testing.T) {
	authorizer := NewAllowlistAuthorizer(repository.NewMemoryAdminList("owner@kashvi.shop"))

	cases := []struct {
		email string
		want  models.Role
	}{
		{"owner@kashvi.shop", models.RoleAdmin},
		{"Owner@Kashvi.shop", models.RoleAdmin},
		{"customer@example.com", models.RoleCustomer},
		{"", models.RoleCustomer},
	}

	for _, tc := range cases {
		role, err := authorizer.RoleFor(context.Background(), tc.email)
		if err != nil {
			t.Fatalf("RoleFor(%q): %v", tc.email, err)
		}
		if role != tc.want {
			t.Fatalf("RoleFor(%q) = %v, want %v", tc.email, role, tc.want)
		}
	}
}
