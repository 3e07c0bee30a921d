package session

type CreateSessionRequest struct {
	TrainerID  int64  `json:"trainer_id"`
	CourseName string `json:"course_name" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Location   string `json:"location" binding:"required"`
	Duration   int    `json:"duration"`

	// Admin-only: record the session as trainer-initiated when creating
	// it on a trainer's behalf. Ignored for trainer callers.
	CreatedByTrainer bool `json:"created_by_trainer"`
}

type UpdateSessionRequest struct {
	TrainerID  int64  `json:"trainer_id" binding:"required"`
	CourseName string `json:"course_name" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Location   string `json:"location" binding:"required"`
	Duration   int    `json:"duration"`
}

type SetApprovalRequest struct {
	Status string `json:"status" binding:"required"`
}
