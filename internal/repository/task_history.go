package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/shenikar/urban_response_system/internal/service"
)

type TaskHistoryRepository struct {
	db *pgxpool.Pool
}

func NewTaskHistoryRepository(db *pgxpool.Pool) service.TaskHistoryRepository {
	return &TaskHistoryRepository{db: db}
}

// Append добавляет запись аудита перехода. Таблица append-only.
func (r *TaskHistoryRepository) Append(ctx context.Context, entry *models.TaskHistory) error {
	query := `
		INSERT INTO task_history (report_id, old_status, new_status, changed_by_type, changed_by_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, changed_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.ReportID,
		entry.OldStatus,
		entry.NewStatus,
		entry.ChangedBy.Type,
		entry.ChangedBy.ID,
	).Scan(&entry.ID, &entry.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to append task history: %w", err)
	}
	return nil
}

// ListByReport возвращает историю переходов заявки в хронологическом порядке
func (r *TaskHistoryRepository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.TaskHistory, error) {
	query := `
		SELECT id, report_id, old_status, new_status, changed_by_type, changed_by_id, changed_at
		FROM task_history
		WHERE report_id = $1
		ORDER BY changed_at;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task history: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.TaskHistory, 0)
	for rows.Next() {
		entry := &models.TaskHistory{}
		err := rows.Scan(
			&entry.ID,
			&entry.ReportID,
			&entry.OldStatus,
			&entry.NewStatus,
			&entry.ChangedBy.Type,
			&entry.ChangedBy.ID,
			&entry.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task history row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error task history rows iteration: %w", err)
	}
	return entries, nil
}
