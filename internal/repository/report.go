package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/urban_response_system/internal/apperrors"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/shenikar/urban_response_system/internal/service"
)

const reportColumns = `
	id,
	description,
	location,
	image_path,
	latitude,
	longitude,
	status,
	category,
	citizen_id,
	volunteer_id,
	created_at,
	updated_at`

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую заявку в бд
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (description, location, image_path, latitude, longitude, status, category, citizen_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Description,
		report.Location,
		report.ImagePath,
		report.Latitude,
		report.Longitude,
		report.Status,
		report.Category,
		report.CitizenID,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID возвращает заявку по ее UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1;`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Description,
		&report.Location,
		&report.ImagePath,
		&report.Latitude,
		&report.Longitude,
		&report.Status,
		&report.Category,
		&report.CitizenID,
		&report.VolunteerID,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// AssignIfStatus - условное назначение волонтера: строка обновляется только
// если текущий статус равен ожидаемому. Возвращает число затронутых строк;
// 0 означает, что заявку уже захватил другой волонтер (или id неизвестен).
func (r *ReportRepository) AssignIfStatus(ctx context.Context, reportID, volunteerID uuid.UUID, newStatus, expected models.Status) (int64, error) {
	query := `
		UPDATE reports SET
			status = $1,
			volunteer_id = $2,
			updated_at = NOW()
		WHERE id = $3 AND status = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, newStatus, volunteerID, reportID, expected)
	if err != nil {
		return 0, fmt.Errorf("failed to assign report: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UpdateStatusIf - условная смена статуса с защитой "id + ожидаемый текущий статус"
func (r *ReportRepository) UpdateStatusIf(ctx context.Context, reportID uuid.UUID, newStatus, expected models.Status) (int64, error) {
	query := `
		UPDATE reports SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2 AND status = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, newStatus, reportID, expected)
	if err != nil {
		return 0, fmt.Errorf("failed to update report status: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ListByStatus возвращает заявки в заданном статусе
func (r *ReportRepository) ListByStatus(ctx context.Context, status models.Status) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE status = $1;`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by status: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

// ListByCitizen возвращает заявки горожанина
func (r *ReportRepository) ListByCitizen(ctx context.Context, citizenID uuid.UUID) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE citizen_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, citizenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by citizen: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

// ListByVolunteer возвращает заявки, назначенные волонтеру
func (r *ReportRepository) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE volunteer_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by volunteer: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

// ListReports возвращает список заявок с пагинацией
func (r *ReportRepository) ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

func scanReports(rows pgx.Rows) ([]*models.Report, error) {
	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.Description,
			&report.Location,
			&report.ImagePath,
			&report.Latitude,
			&report.Longitude,
			&report.Status,
			&report.Category,
			&report.CitizenID,
			&report.VolunteerID,
			&report.CreatedAt,
			&report.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error report rows iteration: %w", err)
	}
	return reports, nil
}

// GetReportFromCache пытается получить заявку из Redis
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	key := fmt.Sprintf("report:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache сохраняет заявку в Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.Report) error {
	key := fmt.Sprintf("report:%s", report.ID.String())
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	// Срок жизни кэша - 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache удаляет заявку из Redis кэша
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("report:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}
