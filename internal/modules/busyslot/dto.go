package busyslot

import "time"

type CreateBusySlotRequest struct {
	Start  time.Time `json:"start_time" binding:"required"`
	End    time.Time `json:"end_time" binding:"required"`
	Reason string    `json:"reason"`
}

type UpdateBusySlotRequest struct {
	Start  time.Time `json:"start_time" binding:"required"`
	End    time.Time `json:"end_time" binding:"required"`
	Reason string    `json:"reason"`
}
