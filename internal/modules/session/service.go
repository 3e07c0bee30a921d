package session

import (
	"context"
	"errors"
	"fmt"

	"trainerbook/internal/domain"
	"trainerbook/internal/pkg/validator"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	sessions  SessionRepository
	busySlots BusySlotReader
	notifs    NotificationSender
	log       *zap.Logger
}

func NewService(sessions SessionRepository, busySlots BusySlotReader, notifs NotificationSender, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		sessions:  sessions,
		busySlots: busySlots,
		notifs:    notifs,
		log:       log,
	}
}

// Create schedules a session. A trainer may only book themself and is
// gated against their own busy slots; an admin books any trainer with no
// busy-slot check (admins resolve conflicts manually) and the session is
// approved immediately. Sessions are never checked against other
// sessions of the same trainer.
func (s *Service) Create(ctx context.Context, req CreateSessionRequest, actor domain.Actor) (*domain.Session, error) {
	duration := req.Duration
	if duration <= 0 {
		duration = domain.DefaultSessionDuration
	}

	sess := &domain.Session{
		TrainerID:  req.TrainerID,
		CourseName: req.CourseName,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		Duration:   duration,
	}

	if errs := validator.Validate(sess); len(errs) > 0 {
		return nil, ErrValidation
	}

	rng, err := sess.OccupiedRange()
	if err != nil {
		return nil, ErrValidation
	}

	switch actor.Role {
	case domain.RoleTrainer:
		if req.TrainerID != actor.ID {
			return nil, ErrForbidden
		}
		if err := s.checkBusySlots(ctx, req.TrainerID, rng); err != nil {
			return nil, err
		}
		sess.CreatedByTrainer = true
		sess.ApprovalStatus = domain.ApprovalPending

	case domain.RoleAdmin:
		sess.CreatedByTrainer = req.CreatedByTrainer
		sess.ApprovalStatus = domain.ApprovalApproved

	default:
		return nil, ErrForbidden
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	if actor.Role == domain.RoleTrainer {
		s.notifyAdmins(ctx, domain.NotifSession, fmt.Sprintf(
			"Trainer %d scheduled %q on %s at %s, awaiting approval",
			sess.TrainerID, sess.CourseName, sess.Date, sess.Time,
		))
	}

	return s.withTrainer(ctx, sess), nil
}

// Update is an admin-only full field replace. Required fields are
// re-validated but the busy-slot gate is not re-run, consistent with the
// admin bypass at create time.
func (s *Service) Update(ctx context.Context, id int64, req UpdateSessionRequest, actor domain.Actor) (*domain.Session, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration <= 0 {
		duration = domain.DefaultSessionDuration
	}

	sess.TrainerID = req.TrainerID
	sess.CourseName = req.CourseName
	sess.Date = req.Date
	sess.Time = req.Time
	sess.Location = req.Location
	sess.Duration = duration

	if errs := validator.Validate(sess); len(errs) > 0 {
		return nil, ErrValidation
	}
	if _, err := sess.OccupiedRange(); err != nil {
		return nil, ErrValidation
	}

	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}

	return s.withTrainer(ctx, sess), nil
}

// Delete removes a session and returns the deleted record. Admin only.
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Actor) (*domain.Session, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		return nil, err
	}
	return sess, nil
}

// ToggleAttendance flips the attended flag of a session owned by the
// calling trainer. A session belonging to another trainer answers
// not-found, so ownership cannot be probed.
func (s *Service) ToggleAttendance(ctx context.Context, id, callerTrainerID int64) (bool, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return false, err
	}
	if sess.TrainerID != callerTrainerID {
		return false, ErrNotFound
	}

	attended := !sess.Attended
	if err := s.sessions.UpdateAttendance(ctx, id, attended); err != nil {
		return false, err
	}
	return attended, nil
}

// SetApproval assigns the approval status. Admin only; any status may
// follow any other, there is no transition guard.
func (s *Service) SetApproval(ctx context.Context, id int64, status domain.ApprovalStatus, actor domain.Actor) (*domain.Session, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrValidation
	}

	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.UpdateApproval(ctx, id, status); err != nil {
		return nil, err
	}

	sess.ApprovalStatus = status
	return s.withTrainer(ctx, sess), nil
}

func (s *Service) ListForTrainer(ctx context.Context, trainerID int64) ([]domain.Session, error) {
	return s.sessions.ListByTrainer(ctx, trainerID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.ListAllWithTrainer(ctx)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (s *Service) checkBusySlots(ctx context.Context, trainerID int64, rng domain.TimeRange) error {
	slots, err := s.busySlots.ListByTrainer(ctx, trainerID)
	if err != nil {
		return err
	}

	for _, slot := range slots {
		if rng.Overlaps(slot.Range()) {
			return ErrConflict
		}
	}
	return nil
}

// withTrainer attaches the trainer's identity via the read-time join.
// The session is already persisted; a failed join falls back to the bare
// record instead of failing the operation.
func (s *Service) withTrainer(ctx context.Context, sess *domain.Session) *domain.Session {
	joined, err := s.sessions.GetWithTrainer(ctx, sess.ID)
	if err != nil {
		s.log.Warn("trainer join failed", zap.Int64("session_id", sess.ID), zap.Error(err))
		return sess
	}
	return joined
}

func (s *Service) notifyAdmins(ctx context.Context, typ domain.NotificationType, message string) {
	if s.notifs == nil {
		return
	}
	if err := s.notifs.NotifyAdmins(ctx, typ, message); err != nil {
		s.log.Warn("admin notification failed", zap.Error(err))
	}
}
