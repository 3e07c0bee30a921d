package notification

import (
	"context"
	"errors"

	"trainerbook/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("notification not found")

type Service struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) *Service {
	return &Service{repo: repo}
}

// NotifyAdmins writes one advisory record addressed to the admin role.
// Callers treat it as fire-and-forget: an error here must never fail the
// operation that triggered the notice.
func (s *Service) NotifyAdmins(ctx context.Context, typ domain.NotificationType, message string) error {
	n := &domain.Notification{
		Type:          typ,
		Message:       message,
		RecipientRole: domain.RoleAdmin,
	}
	return s.repo.Create(ctx, n)
}

func (s *Service) ListForRole(ctx context.Context, role domain.Role, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.ListByRole(ctx, role, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, role)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
