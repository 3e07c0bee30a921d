package notification

import (
	"context"

	"trainerbook/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRole(ctx context.Context, role domain.Role, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	CountUnread(ctx context.Context, role domain.Role) (int64, error)
}
