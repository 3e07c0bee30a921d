package domain

import "time"

type NotificationType string

const (
	// Trainer declared a new busy slot.
	NotifBusySlot NotificationType = "busy"
	// Trainer scheduled a session that waits for approval.
	NotifSession NotificationType = "session"
)

// Notification is an advisory record addressed to a role. It is written
// best-effort after a successful create and never affects the outcome of
// the operation that triggered it.
type Notification struct {
	ID            int64            `json:"id"`
	Type          NotificationType `json:"type"`
	Message       string           `json:"message" gorm:"type:text"`
	RecipientRole Role             `json:"recipient_role" gorm:"index"`
	IsRead        bool             `json:"is_read"`
	CreatedAt     time.Time        `json:"created_at"`
}
