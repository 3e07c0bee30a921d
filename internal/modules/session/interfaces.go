package session

import (
	"context"

	"trainerbook/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	GetWithTrainer(ctx context.Context, id int64) (*domain.Session, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Session, error)
	ListAllWithTrainer(ctx context.Context) ([]domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
	UpdateApproval(ctx context.Context, id int64, status domain.ApprovalStatus) error
	UpdateAttendance(ctx context.Context, id int64, attended bool) error
}

// BusySlotReader is the only view of busy slots the session store needs:
// the trainer's declared unavailability for the create-time conflict gate.
type BusySlotReader interface {
	ListByTrainer(ctx context.Context, trainerID int64) ([]domain.BusySlot, error)
}

type NotificationSender interface {
	NotifyAdmins(ctx context.Context, typ domain.NotificationType, message string) error
}
