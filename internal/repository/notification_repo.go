package repository

import (
	"context"
	"time"

	"trainerbook/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Type          string    `gorm:"column:type"`
	Message       *string   `gorm:"column:message"`
	RecipientRole string    `gorm:"column:recipient_role"`
	IsRead        bool      `gorm:"column:is_read"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	var message string
	if m.Message != nil {
		message = *m.Message
	}

	return &domain.Notification{
		ID:            m.ID,
		Type:          domain.NotificationType(m.Type),
		Message:       message,
		RecipientRole: domain.Role(m.RecipientRole),
		IsRead:        m.IsRead,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	var message *string
	if n.Message != "" {
		v := n.Message
		message = &v
	}

	m := notificationModel{
		Type:          string(n.Type),
		Message:       message,
		RecipientRole: string(n.RecipientRole),
		IsRead:        n.IsRead,
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepository) ListByRole(ctx context.Context, role domain.Role, limit int) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).
		Where("recipient_role = ?", string(role)).
		Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []notificationModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, role domain.Role) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("recipient_role = ? AND is_read = ?", string(role), false).
		Count(&cnt)
	return cnt, tx.Error
}
