package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/urban_response_system/internal/apperrors"
	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/shenikar/urban_response_system/internal/geo"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportRepository определяет контракт для работы с бд заявок
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	AssignIfStatus(ctx context.Context, reportID, volunteerID uuid.UUID, newStatus, expected models.Status) (int64, error)
	UpdateStatusIf(ctx context.Context, reportID uuid.UUID, newStatus, expected models.Status) (int64, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Report, error)
	ListByCitizen(ctx context.Context, citizenID uuid.UUID) ([]*models.Report, error)
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*models.Report, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error)
	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error)
	SetReportCache(ctx context.Context, report *models.Report) error
	InvalidateReportCache(ctx context.Context, id uuid.UUID) error
}

// TaskHistoryRepository определяет контракт для журнала переходов
type TaskHistoryRepository interface {
	Append(ctx context.Context, entry *models.TaskHistory) error
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.TaskHistory, error)
}

// ReportService определяет контракт бизнес-логики заявок
type ReportService interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error)
	ListReportsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]*models.Report, error)
	ListReportsByVolunteer(ctx context.Context, volunteerUserID uuid.UUID) ([]*models.Report, error)
	NearbyUnassignedReports(ctx context.Context, volunteerUserID uuid.UUID) ([]*models.Report, error)
	ClaimReport(ctx context.Context, reportID, volunteerUserID uuid.UUID) (*models.Report, error)
	UpdateReportStatus(ctx context.Context, reportID uuid.UUID, newStatus models.Status, volunteerUserID uuid.UUID) (*models.Report, error)
	ReportHistory(ctx context.Context, reportID uuid.UUID) ([]*models.TaskHistory, error)
}

type reportService struct {
	reports    ReportRepository
	volunteers VolunteerRepository
	users      UserRepository
	history    TaskHistoryRepository
	fanout     NotificationFanout
	alerts     AlertService
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewReportService(
	reports ReportRepository,
	volunteers VolunteerRepository,
	users UserRepository,
	history TaskHistoryRepository,
	fanout NotificationFanout,
	alerts AlertService,
	logger *logrus.Logger,
	cfg *config.Config,
) ReportService {
	return &reportService{
		reports:    reports,
		volunteers: volunteers,
		users:      users,
		history:    history,
		fanout:     fanout,
		alerts:     alerts,
		logger:     logger,
		cfg:        cfg,
	}
}

// CreateReport создает заявку от имени горожанина и асинхронно
// оповещает волонтеров поблизости
func (s *reportService) CreateReport(ctx context.Context, report *models.Report) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "CreateReport",
		"citizen_id": report.CitizenID,
	})
	log.Info("Attempting to create a new report")

	exists, err := s.users.Exists(ctx, report.CitizenID)
	if err != nil {
		log.WithError(err).Error("Failed to check citizen existence")
		return fmt.Errorf("service: could not verify citizen: %w", err)
	}
	if !exists {
		return fmt.Errorf("service: citizen %s: %w", report.CitizenID, apperrors.ErrNotFound)
	}

	if strings.TrimSpace(report.Location) == "" {
		return fmt.Errorf("service: location cannot be empty: %w", apperrors.ErrInvalidState)
	}

	report.Status = models.StatusCreated
	report.VolunteerID = nil
	if err := s.reports.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}
	log.WithField("report_id", report.ID).Info("Report created successfully")

	// Оповещение волонтеров не должно ни блокировать, ни ронять создание заявки:
	// запускаем на контексте, отвязанном от запроса
	alertCtx := context.WithoutCancel(ctx)
	lat, lon := report.Latitude, report.Longitude
	alertType := reportTitle(report.Description)
	go func() {
		if _, err := s.alerts.Dispatch(alertCtx, alertType, lat, lon); err != nil {
			s.logger.WithError(err).Warn("Failed to dispatch alert for new report")
		}
	}()

	return nil
}

// GetReport получает заявку по ID, сначала пробуя кэш
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	cached, err := s.reports.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read report cache")
	}
	if cached != nil {
		return cached, nil
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}

	if err := s.reports.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache report")
	}
	return report, nil
}

// ListReports возвращает список заявок с пагинацией
func (s *reportService) ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reports, err := s.reports.ListReports(ctx, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, nil
}

// ListReportsByCitizen возвращает заявки горожанина
func (s *reportService) ListReportsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]*models.Report, error) {
	exists, err := s.users.Exists(ctx, citizenID)
	if err != nil {
		return nil, fmt.Errorf("service: could not verify citizen: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("service: citizen %s: %w", citizenID, apperrors.ErrNotFound)
	}

	reports, err := s.reports.ListByCitizen(ctx, citizenID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list citizen reports: %w", err)
	}
	return reports, nil
}

// ListReportsByVolunteer возвращает заявки, назначенные волонтеру (по id учетки)
func (s *reportService) ListReportsByVolunteer(ctx context.Context, volunteerUserID uuid.UUID) ([]*models.Report, error) {
	volunteer, err := s.volunteers.GetByUserID(ctx, volunteerUserID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	reports, err := s.reports.ListByVolunteer(ctx, volunteer.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list volunteer reports: %w", err)
	}
	return reports, nil
}

// NearbyUnassignedReports возвращает незанятые заявки в радиусе от волонтера
func (s *reportService) NearbyUnassignedReports(ctx context.Context, volunteerUserID uuid.UUID) ([]*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "NearbyUnassignedReports",
		"user_id": volunteerUserID,
	})

	volunteer, err := s.volunteers.GetByUserID(ctx, volunteerUserID)
	if err != nil {
		log.WithError(err).Warn("Volunteer lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}
	if !volunteer.Availability {
		return nil, fmt.Errorf("service: volunteer is not available: %w", apperrors.ErrInvalidState)
	}

	created, err := s.reports.ListByStatus(ctx, models.StatusCreated)
	if err != nil {
		log.WithError(err).Error("Failed to list unassigned reports")
		return nil, fmt.Errorf("service: could not list unassigned reports: %w", err)
	}

	nearby := geo.NearbyWithinMeters(created, volunteer.Latitude, volunteer.Longitude, s.cfg.NearbyReportRadiusMeters)
	log.WithField("count", len(nearby)).Info("Nearby reports resolved")
	return nearby, nil
}

// ClaimReport - захват заявки волонтером.
// Переход CREATED -> ASSIGNED выполняется одним условным обновлением;
// дальше ветвимся только по числу фактически измененных строк.
// Чтение-проверка-запись здесь недопустимы: под конкурентными захватами
// они теряют гонку молча.
func (s *reportService) ClaimReport(ctx context.Context, reportID, volunteerUserID uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ClaimReport",
		"report_id": reportID,
		"user_id":   volunteerUserID,
	})
	log.Info("Attempting to claim report")

	volunteer, err := s.volunteers.GetByUserID(ctx, volunteerUserID)
	if err != nil {
		log.WithError(err).Warn("Volunteer lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}
	if !volunteer.Availability {
		return nil, fmt.Errorf("service: volunteer is not available: %w", apperrors.ErrInvalidState)
	}

	affected, err := s.reports.AssignIfStatus(ctx, reportID, volunteer.ID, models.StatusAssigned, models.StatusCreated)
	if err != nil {
		log.WithError(err).Error("Conditional assign failed")
		return nil, fmt.Errorf("service: could not assign report: %w", err)
	}
	if affected == 0 {
		// Ноль строк: либо заявки нет, либо гонку выиграл другой волонтер
		if _, getErr := s.reports.GetByID(ctx, reportID); getErr != nil {
			if errors.Is(getErr, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("service: %w", getErr)
			}
			return nil, fmt.Errorf("service: could not get report after assign: %w", getErr)
		}
		log.Info("Claim lost the race")
		return nil, fmt.Errorf("service: report already assigned or closed: %w", apperrors.ErrConflict)
	}

	updated, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get report after assign: %w", err)
	}

	if err := s.reports.InvalidateReportCache(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	s.appendHistory(ctx, reportID, models.StatusCreated, models.StatusAssigned, volunteer.ActorRef())
	s.fanout.Notify(ctx, s.buildAssignmentEvent(ctx, updated, volunteer))

	log.Info("Report claimed successfully")
	return updated, nil
}

// UpdateReportStatus - переход статуса по запросу назначенного волонтера
func (s *reportService) UpdateReportStatus(ctx context.Context, reportID uuid.UUID, newStatus models.Status, volunteerUserID uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "UpdateReportStatus",
		"report_id":  reportID,
		"user_id":    volunteerUserID,
		"new_status": newStatus,
	})
	log.Info("Attempting to update report status")

	if !newStatus.Valid() {
		return nil, fmt.Errorf("service: unknown status %q: %w", newStatus, apperrors.ErrInvalidState)
	}
	// Возврат в CREATED запрещен всегда, независимо от текущего статуса
	if newStatus == models.StatusCreated {
		return nil, fmt.Errorf("service: report cannot be reverted to unclaimed: %w", apperrors.ErrInvalidTransition)
	}

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Report lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}

	if report.VolunteerID == nil {
		return nil, fmt.Errorf("service: report has no assigned volunteer: %w", apperrors.ErrForbidden)
	}
	volunteer, err := s.volunteers.GetByID(ctx, *report.VolunteerID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	// Сравниваем по id учетной записи, а не по id записи волонтера
	if volunteer.UserID != volunteerUserID {
		log.Warn("Status update by non-assigned volunteer rejected")
		return nil, fmt.Errorf("service: you are not authorized to update this report: %w", apperrors.ErrForbidden)
	}

	if !report.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("service: transition %s -> %s is not allowed: %w", report.Status, newStatus, apperrors.ErrInvalidTransition)
	}

	// Условная проверка "id + ожидаемый текущий статус" - защита в глубину:
	// переходы почти не конкурируют, но гонка все равно разрешается в бд
	affected, err := s.reports.UpdateStatusIf(ctx, reportID, newStatus, report.Status)
	if err != nil {
		log.WithError(err).Error("Conditional status update failed")
		return nil, fmt.Errorf("service: could not update report status: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("service: report status changed concurrently: %w", apperrors.ErrConflict)
	}

	if err := s.reports.InvalidateReportCache(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	s.appendHistory(ctx, reportID, report.Status, newStatus, volunteer.ActorRef())

	updated, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get report after status update: %w", err)
	}

	s.fanout.Notify(ctx, s.buildStatusChangeEvent(ctx, updated, report.Status))

	log.Info("Report status updated successfully")
	return updated, nil
}

// ReportHistory возвращает журнал переходов заявки
func (s *reportService) ReportHistory(ctx context.Context, reportID uuid.UUID) ([]*models.TaskHistory, error) {
	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	entries, err := s.history.ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list report history: %w", err)
	}
	return entries, nil
}

// appendHistory пишет строку аудита; сбой журнала не откатывает переход
func (s *reportService) appendHistory(ctx context.Context, reportID uuid.UUID, oldStatus, newStatus models.Status, actor models.ActorRef) {
	entry := &models.TaskHistory{
		ReportID:  reportID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: actor,
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("report_id", reportID).Error("Failed to append task history")
	}
}

// buildAssignmentEvent собирает событие ASSIGNMENT для горожанина и волонтера.
// Недоступность учеток влияет только на адреса доставки, не на сам захват.
func (s *reportService) buildAssignmentEvent(ctx context.Context, report *models.Report, volunteer *models.Volunteer) models.NotificationEvent {
	volunteerName := "A volunteer"
	volunteerEmail := ""
	if volUser, err := s.users.GetByID(ctx, volunteer.UserID); err != nil {
		s.logger.WithError(err).Warn("Failed to load volunteer account for notification")
	} else {
		if volUser.Name != "" {
			volunteerName = volUser.Name
		}
		volunteerEmail = volUser.Email
	}

	citizenEmail := ""
	if citizen, err := s.users.GetByID(ctx, report.CitizenID); err != nil {
		s.logger.WithError(err).Warn("Failed to load citizen account for notification")
	} else {
		citizenEmail = citizen.Email
	}

	title := reportTitle(report.Description)
	reportID := report.ID

	return models.NotificationEvent{
		Kind:     models.NotificationAssignment,
		ReportID: &reportID,
		Recipients: []models.NotificationRecipient{
			{
				Actor:   models.CitizenRef(report.CitizenID),
				Email:   citizenEmail,
				Subject: "Your report has been claimed",
				Message: fmt.Sprintf("%s has claimed your report: %s", volunteerName, title),
			},
			{
				Actor:   volunteer.ActorRef(),
				Email:   volunteerEmail,
				Subject: "You have a new assignment",
				Message: fmt.Sprintf("You have been assigned to: %s", title),
			},
		},
	}
}

// buildStatusChangeEvent собирает событие STATUS_CHANGE для владельца заявки
func (s *reportService) buildStatusChangeEvent(ctx context.Context, report *models.Report, oldStatus models.Status) models.NotificationEvent {
	citizenEmail := ""
	if citizen, err := s.users.GetByID(ctx, report.CitizenID); err != nil {
		s.logger.WithError(err).Warn("Failed to load citizen account for notification")
	} else {
		citizenEmail = citizen.Email
	}

	reportID := report.ID
	return models.NotificationEvent{
		Kind:     models.NotificationStatusChange,
		ReportID: &reportID,
		Recipients: []models.NotificationRecipient{
			{
				Actor:   models.CitizenRef(report.CitizenID),
				Email:   citizenEmail,
				Subject: "Your report status has changed",
				Message: fmt.Sprintf("Your report %q moved from %s to %s", reportTitle(report.Description), oldStatus, report.Status),
			},
		},
	}
}

// reportTitle возвращает первую строку описания (текст до первого перевода строки)
func reportTitle(description string) string {
	line := description
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "Report"
	}
	return line
}
