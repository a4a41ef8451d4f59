package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/example/kashvi/internal/models"
)

// ErrNotFound is returned when a requested record does not exist. Callers treat
// it as a normal negative result, not a failure.
var ErrNotFound = errors.New("record not found")

// ProductFilter narrows storefront product listings.
type ProductFilter struct {
	Category string
	Search   string
	Trending *bool
}

// ProductReader serves storefront product reads.
type ProductReader interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	ByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// OfferReader resolves offers by coupon code.
type OfferReader interface {
	ByCode(ctx context.Context, code string) (*models.Offer, error)
}

// OrderWriter persists checkout orders.
type OrderWriter interface {
	Create(ctx context.Context, order *models.Order) error
}

// NotificationRepository exposes the primitive operations the singleton toggle
// is built from. Transact runs fn atomically: either every write inside fn is
// applied or none are.
type NotificationRepository interface {
	Transact(ctx context.Context, fn func(NotificationRepository) error) error
	ActiveIDs(ctx context.Context) ([]uuid.UUID, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// AdminList answers allow-list membership checks.
type AdminList interface {
	Contains(ctx context.Context, email string) (bool, error)
}
