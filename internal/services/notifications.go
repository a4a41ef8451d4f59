package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/kashvi/internal/repository"
)

// NotificationService enforces the banner invariant: at most one notification
// is active at any observable point. All flag changes go through here; CRUD
// handlers never touch the active column directly.
type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Activate switches id on after switching every other active notification off,
// in a single transaction. Either the whole swap applies or none of it does.
func (s *NotificationService) Activate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transact(ctx, func(tx repository.NotificationRepository) error {
		active, err := tx.ActiveIDs(ctx)
		if err != nil {
			return err
		}
		for _, other := range active {
			if other == id {
				continue
			}
			if err := tx.SetActive(ctx, other, false); err != nil {
				return err
			}
		}
		return tx.SetActive(ctx, id, true)
	})
}

// Deactivate switches id off. A single-row update needs no transaction.
func (s *NotificationService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetActive(ctx, id, false)
}
