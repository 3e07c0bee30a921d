package busyslot

import (
	"context"

	"trainerbook/internal/domain"
)

// BusySlotRepository defines the persistence surface the service needs.
type BusySlotRepository interface {
	Create(ctx context.Context, b *domain.BusySlot) error
	GetOwned(ctx context.Context, id, trainerID int64) (*domain.BusySlot, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]domain.BusySlot, error)
	ListAll(ctx context.Context) ([]domain.BusySlot, error)
	Update(ctx context.Context, b *domain.BusySlot) error
	Delete(ctx context.Context, id int64) error
}

// NotificationSender delivers best-effort notices to admins.
type NotificationSender interface {
	NotifyAdmins(ctx context.Context, typ domain.NotificationType, message string) error
}
