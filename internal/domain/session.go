package domain

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DefaultSessionDuration = 60 // minutes
)

// Session is a scheduled training course occupying a trainer's time.
// Trainer-created sessions start pending and wait for an admin review;
// admin-created sessions are approved immediately.
type Session struct {
	ID               int64          `json:"id"`
	TrainerID        int64          `json:"trainer_id" validate:"required"`
	CourseName       string         `json:"course_name" validate:"required"`
	Date             string         `json:"date" validate:"required"`
	Time             string         `json:"time" validate:"required"`
	Location         string         `json:"location" validate:"required"`
	Duration         int            `json:"duration"`
	CreatedByTrainer bool           `json:"created_by_trainer"`
	ApprovalStatus   ApprovalStatus `json:"approval_status"`
	Attended         bool           `json:"attended"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	// Read-time join for display, not a stored relationship.
	Trainer *User `json:"trainer,omitempty" gorm:"-"`
}

// OccupiedRange computes the half-open interval
// [date+time, date+time+duration) the session blocks out of the
// trainer's calendar.
func (s Session) OccupiedRange() (TimeRange, error) {
	start, err := time.Parse(DateLayout+" "+TimeLayout, s.Date+" "+s.Time)
	if err != nil {
		return TimeRange{}, ErrInvalidRange
	}

	d := s.Duration
	if d <= 0 {
		d = DefaultSessionDuration
	}
	return NewTimeRange(start, start.Add(time.Duration(d)*time.Minute))
}
