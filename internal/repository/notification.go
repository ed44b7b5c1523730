package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/shenikar/urban_response_system/internal/service"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create сохраняет уведомление. Таблица append-only, обновлений нет.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (message, recipient_type, recipient_id, report_id, type)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		notification.Message,
		notification.Recipient.Type,
		notification.Recipient.ID,
		notification.ReportID,
		notification.Type,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByRecipient возвращает уведомления получателя, новые первыми
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipient models.ActorRef) ([]*models.Notification, error) {
	query := `
		SELECT id, message, recipient_type, recipient_id, report_id, type, created_at
		FROM notifications
		WHERE recipient_type = $1 AND recipient_id = $2
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, recipient.Type, recipient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.Message,
			&n.Recipient.Type,
			&n.Recipient.ID,
			&n.ReportID,
			&n.Type,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error notification rows iteration: %w", err)
	}
	return notifications, nil
}

// CountByRecipient возвращает число уведомлений получателя (для бэджа в UI)
func (r *NotificationRepository) CountByRecipient(ctx context.Context, recipient models.ActorRef) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_type = $1 AND recipient_id = $2;`
	if err := r.db.QueryRow(ctx, query, recipient.Type, recipient.ID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}
