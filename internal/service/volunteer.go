package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/urban_response_system/internal/apperrors"
	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/shenikar/urban_response_system/internal/geo"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// VolunteerRepository определяет контракт для работы с бд волонтеров
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Volunteer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error)
	List(ctx context.Context) ([]*models.Volunteer, error)
	ListAvailable(ctx context.Context) ([]*models.Volunteer, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, availability bool) error
}

// UserRepository определяет контракт для работы с учетными записями
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// VolunteerService определяет контракт бизнес-логики волонтеров
type VolunteerService interface {
	RegisterVolunteer(ctx context.Context, user *models.User, volunteer *models.Volunteer) (*models.Volunteer, error)
	GetVolunteer(ctx context.Context, id uuid.UUID) (*models.Volunteer, error)
	GetVolunteerByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]*models.Volunteer, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, availability bool) (*models.Volunteer, error)
	NearbyVolunteers(ctx context.Context, lat, lon float64) ([]*models.Volunteer, error)
}

type volunteerService struct {
	volunteers VolunteerRepository
	users      UserRepository
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewVolunteerService(volunteers VolunteerRepository, users UserRepository, logger *logrus.Logger, cfg *config.Config) VolunteerService {
	return &volunteerService{
		volunteers: volunteers,
		users:      users,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterVolunteer регистрирует волонтера.
// Последовательность create-then-link: сначала создается учетная запись,
// затем запись волонтера с ссылкой на нее. Никакого каскадного владения -
// удаление волонтера не затрагивает учетку.
func (s *volunteerService) RegisterVolunteer(ctx context.Context, user *models.User, volunteer *models.Volunteer) (*models.Volunteer, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "RegisterVolunteer",
		"email":   user.Email,
	})
	log.Info("Attempting to register a new volunteer")

	if strings.TrimSpace(user.Email) == "" {
		return nil, fmt.Errorf("service: account email is required: %w", apperrors.ErrInvalidState)
	}

	user.UserType = accountTypeFor(volunteer.Vtype)
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create account in repository")
		return nil, fmt.Errorf("service: could not create account: %w", err)
	}

	volunteer.UserID = user.ID
	if err := s.volunteers.Create(ctx, volunteer); err != nil {
		log.WithError(err).Error("Failed to create volunteer in repository")
		return nil, fmt.Errorf("service: could not create volunteer: %w", err)
	}

	log.WithField("volunteer_id", volunteer.ID).Info("Volunteer registered successfully")
	return volunteer, nil
}

// GetVolunteer получает волонтера по id записи волонтера
func (s *volunteerService) GetVolunteer(ctx context.Context, id uuid.UUID) (*models.Volunteer, error) {
	volunteer, err := s.volunteers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return volunteer, nil
}

// GetVolunteerByUserID получает волонтера по id его учетной записи
func (s *volunteerService) GetVolunteerByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error) {
	volunteer, err := s.volunteers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return volunteer, nil
}

// ListVolunteers возвращает всех волонтеров
func (s *volunteerService) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	volunteers, err := s.volunteers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list volunteers: %w", err)
	}
	return volunteers, nil
}

// UpdateAvailability переключает доступность волонтера
func (s *volunteerService) UpdateAvailability(ctx context.Context, id uuid.UUID, availability bool) (*models.Volunteer, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "UpdateAvailability",
		"volunteer_id": id,
		"availability": availability,
	})

	if err := s.volunteers.UpdateAvailability(ctx, id, availability); err != nil {
		log.WithError(err).Warn("Failed to update availability")
		return nil, fmt.Errorf("service: %w", err)
	}

	volunteer, err := s.volunteers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	log.Info("Volunteer availability updated")
	return volunteer, nil
}

// NearbyVolunteers возвращает доступных волонтеров в радиусе оповещения
func (s *volunteerService) NearbyVolunteers(ctx context.Context, lat, lon float64) ([]*models.Volunteer, error) {
	available, err := s.volunteers.ListAvailable(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list available volunteers")
		return nil, fmt.Errorf("service: could not list available volunteers: %w", err)
	}

	return geo.NearbyWithinKm(available, lat, lon, s.cfg.AlertRadiusKm), nil
}

// accountTypeFor сопоставляет тип волонтерской записи типу учетки
func accountTypeFor(vtype models.VolunteerType) models.ActorType {
	switch vtype {
	case models.VolunteerTypeNGO:
		return models.ActorNGO
	case models.VolunteerTypeGovernment:
		return models.ActorGovernment
	default:
		return models.ActorVolunteer
	}
}
