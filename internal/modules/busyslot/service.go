package busyslot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trainerbook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	slots  BusySlotRepository
	notifs NotificationSender
	log    *zap.Logger
}

func NewService(slots BusySlotRepository, notifs NotificationSender, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		slots:  slots,
		notifs: notifs,
		log:    log,
	}
}

// Create persists a new unavailability window for the trainer. The range
// must not overlap any of the trainer's existing slots; the scan is O(n)
// over that trainer's slots, which stays small in practice.
func (s *Service) Create(ctx context.Context, trainerID int64, start, end time.Time, reason string) (*domain.BusySlot, error) {
	if trainerID == 0 {
		return nil, ErrValidation
	}

	rng, err := domain.NewTimeRange(start, end)
	if err != nil {
		return nil, ErrValidation
	}

	if err := s.checkConflicts(ctx, trainerID, rng, 0); err != nil {
		return nil, err
	}

	slot := &domain.BusySlot{
		TrainerID: trainerID,
		Start:     rng.Start,
		End:       rng.End,
		Reason:    reason,
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.notifyAdmins(ctx, domain.NotifBusySlot, fmt.Sprintf(
		"Trainer %d marked busy from %s to %s",
		trainerID,
		rng.Start.Format("2006-01-02 15:04"),
		rng.End.Format("2006-01-02 15:04"),
	))

	return slot, nil
}

// Update replaces the range and reason of a slot owned by the caller.
// The conflict scan excludes the slot being updated.
func (s *Service) Update(ctx context.Context, id, callerTrainerID int64, start, end time.Time, reason string) (*domain.BusySlot, error) {
	slot, err := s.slots.GetOwned(ctx, id, callerTrainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rng, err := domain.NewTimeRange(start, end)
	if err != nil {
		return nil, ErrValidation
	}

	if err := s.checkConflicts(ctx, callerTrainerID, rng, id); err != nil {
		return nil, err
	}

	slot.Start = rng.Start
	slot.End = rng.End
	slot.Reason = reason

	if err := s.slots.Update(ctx, slot); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return slot, nil
}

// Delete removes a slot owned by the caller and returns the deleted
// record. Existence and ownership are conflated in the not-found answer.
func (s *Service) Delete(ctx context.Context, id, callerTrainerID int64) (*domain.BusySlot, error) {
	slot, err := s.slots.GetOwned(ctx, id, callerTrainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.slots.Delete(ctx, id); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) ListForTrainer(ctx context.Context, trainerID int64) ([]domain.BusySlot, error) {
	return s.slots.ListByTrainer(ctx, trainerID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.BusySlot, error) {
	return s.slots.ListAll(ctx)
}

// checkConflicts scans the trainer's slots for an overlap with rng,
// skipping excludeID (self-exclusion on update).
func (s *Service) checkConflicts(ctx context.Context, trainerID int64, rng domain.TimeRange, excludeID int64) error {
	existing, err := s.slots.ListByTrainer(ctx, trainerID)
	if err != nil {
		return err
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if rng.Overlaps(other.Range()) {
			return ErrConflict
		}
	}
	return nil
}

func (s *Service) notifyAdmins(ctx context.Context, typ domain.NotificationType, message string) {
	if s.notifs == nil {
		return
	}
	if err := s.notifs.NotifyAdmins(ctx, typ, message); err != nil {
		s.log.Warn("admin notification failed", zap.Error(err))
	}
}

// isOverlapViolation recognizes the Postgres backstop: a unique or
// exclusion constraint on (trainer_id, time range) raised by a
// concurrent write that slipped past the advisory scan.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
