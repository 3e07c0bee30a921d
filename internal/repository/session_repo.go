package repository

import (
	"context"
	"time"

	"trainerbook/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	TrainerID        int64     `gorm:"column:trainer_id"`
	CourseName       string    `gorm:"column:course_name"`
	Date             string    `gorm:"column:date"`
	Time             string    `gorm:"column:time"`
	Location         string    `gorm:"column:location"`
	Duration         int       `gorm:"column:duration"`
	CreatedByTrainer bool      `gorm:"column:created_by_trainer"`
	ApprovalStatus   string    `gorm:"column:approval_status"`
	Attended         bool      `gorm:"column:attended"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "sessions" }

// sessionWithTrainerRow carries the read-time join with the trainer's
// identity for display purposes.
type sessionWithTrainerRow struct {
	ID               int64     `gorm:"column:id"`
	TrainerID        int64     `gorm:"column:trainer_id"`
	CourseName       string    `gorm:"column:course_name"`
	Date             string    `gorm:"column:date"`
	Time             string    `gorm:"column:time"`
	Location         string    `gorm:"column:location"`
	Duration         int       `gorm:"column:duration"`
	CreatedByTrainer bool      `gorm:"column:created_by_trainer"`
	ApprovalStatus   string    `gorm:"column:approval_status"`
	Attended         bool      `gorm:"column:attended"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
	TrainerName      string    `gorm:"column:trainer_name"`
	TrainerEmail     string    `gorm:"column:trainer_email"`
}

func toDomainSession(m sessionModel) *domain.Session {
	return &domain.Session{
		ID:               m.ID,
		TrainerID:        m.TrainerID,
		CourseName:       m.CourseName,
		Date:             m.Date,
		Time:             m.Time,
		Location:         m.Location,
		Duration:         m.Duration,
		CreatedByTrainer: m.CreatedByTrainer,
		ApprovalStatus:   domain.ApprovalStatus(m.ApprovalStatus),
		Attended:         m.Attended,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toSessionModel(s *domain.Session) sessionModel {
	return sessionModel{
		ID:               s.ID,
		TrainerID:        s.TrainerID,
		CourseName:       s.CourseName,
		Date:             s.Date,
		Time:             s.Time,
		Location:         s.Location,
		Duration:         s.Duration,
		CreatedByTrainer: s.CreatedByTrainer,
		ApprovalStatus:   string(s.ApprovalStatus),
		Attended:         s.Attended,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := toSessionModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	trainer := s.Trainer
	*s = *toDomainSession(m)
	s.Trainer = trainer
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

// GetWithTrainer returns the session joined with the trainer's name and
// email.
func (r *SessionRepository) GetWithTrainer(ctx context.Context, id int64) (*domain.Session, error) {
	q := `
SELECT s.*, u.name AS trainer_name, u.email AS trainer_email
FROM sessions s
JOIN users u ON u.id = s.trainer_id
WHERE s.id = ?
`
	var row sessionWithTrainerRow
	tx := r.db.WithContext(ctx).Raw(q, id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rowToDomainSession(row), nil
}

func (r *SessionRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Session, error) {
	var models []sessionModel
	tx := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("date DESC").
		Order("time DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Session, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainSession(m))
	}
	return out, nil
}

func (r *SessionRepository) ListAllWithTrainer(ctx context.Context) ([]domain.Session, error) {
	q := `
SELECT s.*, u.name AS trainer_name, u.email AS trainer_email
FROM sessions s
JOIN users u ON u.id = s.trainer_id
ORDER BY s.date DESC, s.time DESC
`
	var rows []sessionWithTrainerRow
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, *rowToDomainSession(row))
	}
	return out, nil
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) error {
	m := toSessionModel(s)
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"trainer_id":  m.TrainerID,
			"course_name": m.CourseName,
			"date":        m.Date,
			"time":        m.Time,
			"location":    m.Location,
			"duration":    m.Duration,
		})
	return tx.Error
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&sessionModel{}, id).Error
}

func (r *SessionRepository) UpdateApproval(ctx context.Context, id int64, status domain.ApprovalStatus) error {
	return r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", id).
		Update("approval_status", string(status)).Error
}

func (r *SessionRepository) UpdateAttendance(ctx context.Context, id int64, attended bool) error {
	return r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", id).
		Update("attended", attended).Error
}

func rowToDomainSession(row sessionWithTrainerRow) *domain.Session {
	return &domain.Session{
		ID:               row.ID,
		TrainerID:        row.TrainerID,
		CourseName:       row.CourseName,
		Date:             row.Date,
		Time:             row.Time,
		Location:         row.Location,
		Duration:         row.Duration,
		CreatedByTrainer: row.CreatedByTrainer,
		ApprovalStatus:   domain.ApprovalStatus(row.ApprovalStatus),
		Attended:         row.Attended,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		Trainer: &domain.User{
			ID:    row.TrainerID,
			Name:  row.TrainerName,
			Email: row.TrainerEmail,
		},
	}
}
