package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/urban_response_system/internal/apperrors"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/shenikar/urban_response_system/internal/service"
)

const volunteerColumns = `
	id,
	vtype,
	area,
	latitude,
	longitude,
	availability,
	skill,
	user_id,
	created_at,
	updated_at`

type VolunteerRepository struct {
	db *pgxpool.Pool
}

func NewVolunteerRepository(db *pgxpool.Pool) service.VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Create создает запись волонтера, ссылающуюся на уже созданную учетку
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (vtype, area, latitude, longitude, availability, skill, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		volunteer.Vtype,
		volunteer.Area,
		volunteer.Latitude,
		volunteer.Longitude,
		volunteer.Availability,
		volunteer.Skill,
		volunteer.UserID,
	).Scan(&volunteer.ID, &volunteer.CreatedAt, &volunteer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create volunteer: %w", err)
	}
	return nil
}

// GetByID возвращает волонтера по id записи волонтера
func (r *VolunteerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE id = $1;`
	return r.getOne(ctx, query, id)
}

// GetByUserID возвращает волонтера по id его учетной записи.
// Это разные ключи: захват и авторизация переходов идут по учетке.
func (r *VolunteerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE user_id = $1;`
	return r.getOne(ctx, query, userID)
}

func (r *VolunteerRepository) getOne(ctx context.Context, query string, arg any) (*models.Volunteer, error) {
	volunteer := &models.Volunteer{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&volunteer.ID,
		&volunteer.Vtype,
		&volunteer.Area,
		&volunteer.Latitude,
		&volunteer.Longitude,
		&volunteer.Availability,
		&volunteer.Skill,
		&volunteer.UserID,
		&volunteer.CreatedAt,
		&volunteer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("volunteer: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	return volunteer, nil
}

// List возвращает всех волонтеров
func (r *VolunteerRepository) List(ctx context.Context) ([]*models.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers ORDER BY created_at;`
	return r.listQuery(ctx, query)
}

// ListAvailable возвращает доступных волонтеров
func (r *VolunteerRepository) ListAvailable(ctx context.Context) ([]*models.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE availability = TRUE;`
	return r.listQuery(ctx, query)
}

func (r *VolunteerRepository) listQuery(ctx context.Context, query string, args ...any) ([]*models.Volunteer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		volunteer := &models.Volunteer{}
		err := rows.Scan(
			&volunteer.ID,
			&volunteer.Vtype,
			&volunteer.Area,
			&volunteer.Latitude,
			&volunteer.Longitude,
			&volunteer.Availability,
			&volunteer.Skill,
			&volunteer.UserID,
			&volunteer.CreatedAt,
			&volunteer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, volunteer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error volunteer rows iteration: %w", err)
	}
	return volunteers, nil
}

// UpdateAvailability переключает доступность волонтера
func (r *VolunteerRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, availability bool) error {
	query := `
		UPDATE volunteers SET
			availability = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, availability, id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer availability: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
