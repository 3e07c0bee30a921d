package domain

import "time"

// BusySlot is a trainer-declared interval of unavailability. Slots of the
// same trainer must not overlap each other.
type BusySlot struct {
	ID        int64     `json:"id"`
	TrainerID int64     `json:"trainer_id" gorm:"index" validate:"required"`
	Start     time.Time `json:"start_time" gorm:"column:start_time" validate:"required"`
	End       time.Time `json:"end_time" gorm:"column:end_time" validate:"required"`
	Reason    string    `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b BusySlot) Range() TimeRange {
	return TimeRange{Start: b.Start, End: b.End}
}
