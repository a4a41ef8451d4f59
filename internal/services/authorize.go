package services

import (
	"context"

	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
)

// Authorizer resolves the role for an email address. Handlers depend on this
// interface rather than on the lookup mechanism.
type Authorizer interface {
	RoleFor(ctx context.Context, email string) (models.Role, error)
}

// AllowlistAuthorizer grants RoleAdmin to emails present in the admin
// allow-list and RoleCustomer to everyone else.
type AllowlistAuthorizer struct {
	admins repository.AdminList
}

func NewAllowlistAuthorizer(admins repository.AdminList) *AllowlistAuthorizer {
	return &AllowlistAuthorizer{admins: admins}
}

func (a *AllowlistAuthorizer) RoleFor(ctx context.Context, email string) (models.Role, error) {
	isAdmin, err := a.admins.Contains(ctx, email)
	if err != nil {
		return models.RoleCustomer, err
	}
	if isAdmin {
		return models.RoleAdmin, nil
	}
	return models.RoleCustomer, nil
}
