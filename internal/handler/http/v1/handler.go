package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/urban_response_system/internal/apperrors"
	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/shenikar/urban_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService    service.ReportService
	volunteerService service.VolunteerService
	alertService     service.AlertService
	notifications    service.NotificationFanout
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	reportService service.ReportService,
	volunteerService service.VolunteerService,
	alertService service.AlertService,
	notifications service.NotificationFanout,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reportService:    reportService,
		volunteerService: volunteerService,
		alertService:     alertService,
		notifications:    notifications,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError транслирует типизированные ошибки сервисов в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		log.WithError(err).Info("Resource conflict")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		log.WithError(err).Warn("Authorization denied")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState):
		log.WithError(err).Warn("Invalid state")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
