package service

import (
	"context"
	"fmt"

	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/shenikar/urban_response_system/internal/delivery"
	"github.com/shenikar/urban_response_system/internal/geo"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertService определяет контракт рассылки тревог волонтерам поблизости
type AlertService interface {
	// Dispatch возвращает число волонтеров, которым поставлена доставка
	Dispatch(ctx context.Context, alertType string, lat, lon float64) (int, error)
}

type alertService struct {
	volunteers VolunteerRepository
	users      UserRepository
	publisher  delivery.Publisher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewAlertService(volunteers VolunteerRepository, users UserRepository, publisher delivery.Publisher, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		volunteers: volunteers,
		users:      users,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// Dispatch находит доступных волонтеров в радиусе тревоги и ставит каждому
// письмо в очередь доставки. Ошибка возвращается только если не удалось
// разрешить список волонтеров; сбои отдельных доставок логируются и глотаются.
func (s *alertService) Dispatch(ctx context.Context, alertType string, lat, lon float64) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "Dispatch",
		"alert_type": alertType,
	})
	log.Info("Dispatching alert to nearby volunteers")

	available, err := s.volunteers.ListAvailable(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list available volunteers")
		return 0, fmt.Errorf("service: could not resolve volunteers for alert: %w", err)
	}

	nearby := geo.NearbyWithinKm(available, lat, lon, s.cfg.AlertRadiusKm)

	notified := 0
	for _, volunteer := range nearby {
		user, err := s.users.GetByID(ctx, volunteer.UserID)
		if err != nil {
			log.WithError(err).WithField("volunteer_id", volunteer.ID).Warn("Failed to load volunteer account for alert")
			continue
		}
		if user.Email == "" {
			continue
		}

		task := delivery.EmailTask{
			To:      user.Email,
			Subject: "Alert Nearby",
			Body:    fmt.Sprintf("A %s alert has been raised near your location. Please respond if available.", alertType),
			Kind:    models.NotificationAlert,
		}
		if err := s.publisher.Publish(ctx, task); err != nil {
			log.WithError(err).WithField("to", user.Email).Warn("Failed to enqueue alert delivery")
			continue
		}
		notified++
	}

	log.WithFields(logrus.Fields{"nearby": len(nearby), "notified": notified}).Info("Alert dispatch completed")
	return notified, nil
}
