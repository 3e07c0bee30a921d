package repository

import (
	"context"
	"time"

	"trainerbook/internal/domain"

	"gorm.io/gorm"
)

type BusySlotRepository struct {
	db *gorm.DB
}

func NewBusySlotRepository(db *gorm.DB) *BusySlotRepository {
	return &BusySlotRepository{db: db}
}

type busySlotModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	TrainerID int64     `gorm:"column:trainer_id"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
	Reason    *string   `gorm:"column:reason"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (busySlotModel) TableName() string { return "busy_slots" }

func toDomainBusySlot(m busySlotModel) *domain.BusySlot {
	var reason string
	if m.Reason != nil {
		reason = *m.Reason
	}

	return &domain.BusySlot{
		ID:        m.ID,
		TrainerID: m.TrainerID,
		Start:     m.StartTime,
		End:       m.EndTime,
		Reason:    reason,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBusySlotModel(b *domain.BusySlot) busySlotModel {
	var reason *string
	if b.Reason != "" {
		v := b.Reason
		reason = &v
	}

	return busySlotModel{
		ID:        b.ID,
		TrainerID: b.TrainerID,
		StartTime: b.Start,
		EndTime:   b.End,
		Reason:    reason,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *BusySlotRepository) Create(ctx context.Context, b *domain.BusySlot) error {
	m := toBusySlotModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBusySlot(m)
	return nil
}

// GetOwned finds a slot by id scoped to its owning trainer. A slot that
// exists but belongs to someone else comes back as ErrRecordNotFound, so
// callers cannot probe other trainers' calendars.
func (r *BusySlotRepository) GetOwned(ctx context.Context, id, trainerID int64) (*domain.BusySlot, error) {
	var m busySlotModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", id, trainerID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBusySlot(m), nil
}

func (r *BusySlotRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.BusySlot, error) {
	var models []busySlotModel
	tx := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("start_time ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBusySlots(models), nil
}

func (r *BusySlotRepository) ListAll(ctx context.Context) ([]domain.BusySlot, error) {
	var models []busySlotModel
	tx := r.db.WithContext(ctx).Order("start_time ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBusySlots(models), nil
}

func (r *BusySlotRepository) Update(ctx context.Context, b *domain.BusySlot) error {
	m := toBusySlotModel(b)
	tx := r.db.WithContext(ctx).
		Model(&busySlotModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"start_time": m.StartTime,
			"end_time":   m.EndTime,
			"reason":     m.Reason,
		})
	return tx.Error
}

func (r *BusySlotRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&busySlotModel{}, id).Error
}

func toDomainBusySlots(models []busySlotModel) []domain.BusySlot {
	out := make([]domain.BusySlot, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBusySlot(m))
	}
	return out
}
