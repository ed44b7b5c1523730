package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/urban_response_system/internal/apperrors"
	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/shenikar/urban_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportServiceMocks struct {
	reports    *mocks.MockReportRepository
	volunteers *mocks.MockVolunteerRepository
	users      *mocks.MockUserRepository
	history    *mocks.MockTaskHistoryRepository
	fanout     *mocks.MockNotificationFanout
	alerts     *mocks.MockAlertService
}

// newTestReportService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (*reportService, reportServiceMocks) {
	ctrl := gomock.NewController(t)
	m := reportServiceMocks{
		reports:    mocks.NewMockReportRepository(ctrl),
		volunteers: mocks.NewMockVolunteerRepository(ctrl),
		users:      mocks.NewMockUserRepository(ctrl),
		history:    mocks.NewMockTaskHistoryRepository(ctrl),
		fanout:     mocks.NewMockNotificationFanout(ctrl),
		alerts:     mocks.NewMockAlertService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NearbyReportRadiusMeters: 5000,
		AlertRadiusKm:            5,
	}

	service := NewReportService(m.reports, m.volunteers, m.users, m.history, m.fanout, m.alerts, logger, cfg)
	return service.(*reportService), m
}

func availableVolunteer(userID uuid.UUID) *models.Volunteer {
	return &models.Volunteer{
		ID:           uuid.New(),
		Vtype:        models.VolunteerTypeVolunteer,
		Latitude:     12.90,
		Longitude:    77.58,
		Availability: true,
		UserID:       userID,
	}
}

func TestCreateReport_Success(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	citizenID := uuid.New()
	report := &models.Report{
		CitizenID:   citizenID,
		Description: "Прорыв водопровода\nВода заливает перекресток",
		Location:    "ул. Садовая, 12",
		Latitude:    12.90,
		Longitude:   77.58,
		Category:    models.CategoryWater,
	}

	alertDispatched := make(chan struct{})

	// Ожидания
	m.users.EXPECT().Exists(ctx, citizenID).Return(true, nil).Times(1)
	m.reports.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, r *models.Report) error {
			r.ID = uuid.New()
			return nil
		}).Times(1)

	// Оповещение уходит в отдельной горутине: тип тревоги — первая строка описания
	m.alerts.EXPECT().
		Dispatch(gomock.Any(), "Прорыв водопровода", 12.90, 77.58).
		DoAndReturn(func(ctx context.Context, alertType string, lat, lon float64) (int, error) {
			close(alertDispatched)
			return 1, nil
		}).Times(1)

	// Действие
	err := service.CreateReport(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusCreated, report.Status)
	assert.Nil(t, report.VolunteerID)
	assert.NotEqual(t, uuid.Nil, report.ID)
	<-alertDispatched
}

func TestCreateReport_CitizenNotFound(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		CitizenID:   uuid.New(),
		Description: "Яма на дороге",
		Location:    "пр. Ленина",
	}

	// Ожидания
	m.users.EXPECT().Exists(ctx, report.CitizenID).Return(false, nil).Times(1)

	// Действие
	err := service.CreateReport(ctx, report)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateReport_EmptyLocation(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		CitizenID:   uuid.New(),
		Description: "Обрыв провода",
		Location:    "   ",
	}

	// Ожидания
	m.users.EXPECT().Exists(ctx, report.CitizenID).Return(true, nil).Times(1)

	// Действие
	err := service.CreateReport(ctx, report)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestGetReport_Success_FromCache(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.Report{ID: reportID, Description: "Из кеша"}

	// Ожидания
	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(expected, nil).Times(1)

	// Действие
	report, err := service.GetReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestGetReport_Success_FromDB(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.Report{ID: reportID, Description: "Из БД"}

	// Ожидания
	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(nil, nil).Times(1)
	m.reports.EXPECT().GetByID(ctx, reportID).Return(expected, nil).Times(1)
	m.reports.EXPECT().SetReportCache(ctx, expected).Return(nil).Times(1)

	// Действие
	report, err := service.GetReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestNearbyUnassignedReports_FiltersByRadius(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	volunteer := availableVolunteer(userID)

	nearReport := &models.Report{ID: uuid.New(), Latitude: 12.93, Longitude: 77.60, Status: models.StatusCreated}
	farReport := &models.Report{ID: uuid.New(), Latitude: 13.05, Longitude: 77.58, Status: models.StatusCreated}

	// Ожидания
	m.volunteers.EXPECT().GetByUserID(ctx, userID).Return(volunteer, nil).Times(1)
	m.reports.EXPECT().ListByStatus(ctx, models.StatusCreated).Return([]*models.Report{nearReport, farReport}, nil).Times(1)

	// Действие
	reports, err := service.NearbyUnassignedReports(ctx, userID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, nearReport.ID, reports[0].ID)
}

func TestNearbyUnassignedReports_VolunteerUnavailable(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	volunteer := availableVolunteer(userID)
	volunteer.Availability = false

	// Ожидания
	m.volunteers.EXPECT().GetByUserID(ctx, userID).Return(volunteer, nil).Times(1)

	// Действие
	reports, err := service.NearbyUnassignedReports(ctx, userID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, reports)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestClaimReport_Success(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	citizenID := uuid.New()
	volunteer := availableVolunteer(userID)
	volunteerID := volunteer.ID
	assigned := &models.Report{
		ID:          reportID,
		Description: "Прорыв трубы",
		Status:      models.StatusAssigned,
		CitizenID:   citizenID,
		VolunteerID: &volunteerID,
	}

	// Ожидания
	m.volunteers.EXPECT().GetByUserID(ctx, userID).Return(volunteer, nil).Times(1)
	m.reports.EXPECT().
		AssignIfStatus(ctx, reportID, volunteer.ID, models.StatusAssigned, models.StatusCreated).
		Return(int64(1), nil).Times(1)
	m.reports.EXPECT().GetByID(ctx, reportID).Return(assigned, nil).Times(1)
	m.reports.EXPECT().InvalidateReportCache(ctx, reportID).Return(nil).Times(1)

	m.history.EXPECT().
		Append(ctx, gomock.Any()).
		Do(func(ctx context.Context, entry *models.TaskHistory) {
			assert.Equal(t, reportID, entry.ReportID)
			assert.Equal(t, models.StatusCreated, entry.OldStatus)
			assert.Equal(t, models.StatusAssigned, entry.NewStatus)
			assert.Equal(t, volunteer.ID, entry.ChangedBy.ID)
		}).Return(nil).Times(1)

	m.users.EXPECT().GetByID(ctx, volunteer.UserID).
		Return(&models.User{ID: userID, Name: "Иван", Email: "ivan@example.com"}, nil).Times(1)
	m.users.EXPECT().GetByID(ctx, citizenID).
		Return(&models.User{ID: citizenID, Name: "Мария", Email: "maria@example.com"}, nil).Times(1)

	// Событие ровно с двумя адресатами: горожанин и волонтер
	m.fanout.EXPECT().
		Notify(ctx, gomock.Any()).
		Do(func(ctx context.Context, event models.NotificationEvent) {
			assert.Equal(t, models.NotificationAssignment, event.Kind)
			require.Len(t, event.Recipients, 2)
			assert.Equal(t, models.CitizenRef(citizenID), event.Recipients[0].Actor)
			assert.Equal(t, models.VolunteerRef(volunteer.ID), event.Recipients[1].Actor)
		}).Times(1)

	// Действие
	report, err := service.ClaimReport(ctx, reportID, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, assigned, report)
}

func TestClaimReport_VolunteerNotFound(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	m.volunteers.EXPECT().
		GetByUserID(ctx, userID).
		Return(nil, fmt.Errorf("volunteer: %w", apperrors.ErrNotFound)).Times(1)

	// Действие
	report, err := service.ClaimReport(ctx, uuid.New(), userID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClaimReport_VolunteerUnavailable(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	volunteer := availableVolunteer(userID)
	volunteer.Availability = false

	// Ожидания
	m.volunteers.EXPECT().GetByUserID(ctx, userID).Return(volunteer, nil).Times(1)

	// Действие
	report, err := service.ClaimReport(ctx, uuid.New(), userID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestClaimReport_LostRace(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	volunteer := availableVolunteer(userID)
	otherID := uuid.New()

	// Ожидания
	m.volunteers.EXPECT().GetByUserID(ctx, userID).Return(volunteer, nil).Times(1)
	// Ноль строк: заявку уже захватил другой волонтер
	m.reports.EXPECT().
		AssignIfStatus(ctx, reportID, volunteer.ID, models.StatusAssigned, models.StatusCreated).
		Return(int64(0), nil).Times(1)
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(&models.Report{ID: reportID, Status: models.StatusAssigned, VolunteerID: &otherID}, nil).Times(1)

	// Действие
	report, err := service.ClaimReport(ctx, reportID, userID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestClaimReport_ReportNotFound(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	volunteer := availableVolunteer(userID)

	// Ожидания
	m.volunteers.EXPECT().GetByUserID(ctx, userID).Return(volunteer, nil).Times(1)
	m.reports.EXPECT().
		AssignIfStatus(ctx, reportID, volunteer.ID, models.StatusAssigned, models.StatusCreated).
		Return(int64(0), nil).Times(1)
	// Ноль строк и заявки нет вовсе: это не конфликт, а not found
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)).Times(1)

	// Действие
	report, err := service.ClaimReport(ctx, reportID, userID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClaimReport_ConcurrentClaimers_ExactlyOneWins(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	citizenID := uuid.New()
	const claimers = 8

	var won int32

	// Ожидания
	m.volunteers.EXPECT().
		GetByUserID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error) {
			return availableVolunteer(userID), nil
		}).Times(claimers)

	// Побеждает ровно одно условное обновление, остальные видят 0 строк
	m.reports.EXPECT().
		AssignIfStatus(gomock.Any(), reportID, gomock.Any(), models.StatusAssigned, models.StatusCreated).
		DoAndReturn(func(ctx context.Context, reportID, volunteerID uuid.UUID, newStatus, expected models.Status) (int64, error) {
			if atomic.CompareAndSwapInt32(&won, 0, 1) {
				return 1, nil
			}
			return 0, nil
		}).Times(claimers)

	winnerID := uuid.New()
	m.reports.EXPECT().
		GetByID(gomock.Any(), reportID).
		Return(&models.Report{
			ID:          reportID,
			Status:      models.StatusAssigned,
			CitizenID:   citizenID,
			VolunteerID: &winnerID,
		}, nil).Times(claimers)

	// Побочные эффекты захвата выполняются ровно один раз
	m.reports.EXPECT().InvalidateReportCache(gomock.Any(), reportID).Return(nil).Times(1)
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		Return(&models.User{Email: "user@example.com"}, nil).Times(2)
	m.fanout.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(1)

	// Действие
	var wg sync.WaitGroup
	var successes, conflicts int32
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ClaimReport(ctx, reportID, uuid.New())
			switch {
			case err == nil:
				atomic.AddInt32(&successes, 1)
			case assert.ErrorIs(t, err, apperrors.ErrConflict):
				atomic.AddInt32(&conflicts, 1)
			}
		}()
	}
	wg.Wait()

	// Проверки
	assert.Equal(t, int32(1), successes)
	assert.Equal(t, int32(claimers-1), conflicts)
}

func TestUpdateReportStatus_Success(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	citizenID := uuid.New()
	volunteer := availableVolunteer(userID)
	volunteerID := volunteer.ID

	current := &models.Report{
		ID:          reportID,
		Description: "Прорыв трубы",
		Status:      models.StatusAssigned,
		CitizenID:   citizenID,
		VolunteerID: &volunteerID,
	}
	updated := &models.Report{
		ID:          reportID,
		Description: "Прорыв трубы",
		Status:      models.StatusInProgress,
		CitizenID:   citizenID,
		VolunteerID: &volunteerID,
	}

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).Return(current, nil).Times(1)
	m.volunteers.EXPECT().GetByID(ctx, volunteer.ID).Return(volunteer, nil).Times(1)
	m.reports.EXPECT().
		UpdateStatusIf(ctx, reportID, models.StatusInProgress, models.StatusAssigned).
		Return(int64(1), nil).Times(1)
	m.reports.EXPECT().InvalidateReportCache(ctx, reportID).Return(nil).Times(1)

	m.history.EXPECT().
		Append(ctx, gomock.Any()).
		Do(func(ctx context.Context, entry *models.TaskHistory) {
			assert.Equal(t, models.StatusAssigned, entry.OldStatus)
			assert.Equal(t, models.StatusInProgress, entry.NewStatus)
		}).Return(nil).Times(1)

	m.reports.EXPECT().GetByID(ctx, reportID).Return(updated, nil).Times(1)
	m.users.EXPECT().GetByID(ctx, citizenID).
		Return(&models.User{ID: citizenID, Email: "maria@example.com"}, nil).Times(1)

	// STATUS_CHANGE адресуется только владельцу заявки
	m.fanout.EXPECT().
		Notify(ctx, gomock.Any()).
		Do(func(ctx context.Context, event models.NotificationEvent) {
			assert.Equal(t, models.NotificationStatusChange, event.Kind)
			require.Len(t, event.Recipients, 1)
			assert.Equal(t, models.CitizenRef(citizenID), event.Recipients[0].Actor)
		}).Times(1)

	// Действие
	report, err := service.UpdateReportStatus(ctx, reportID, models.StatusInProgress, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, updated, report)
}

func TestUpdateReportStatus_UnknownStatus(t *testing.T) {
	// Подготовка
	service, _ := newTestReportService(t)
	ctx := context.Background()

	// Действие
	report, err := service.UpdateReportStatus(ctx, uuid.New(), models.Status("BOGUS"), uuid.New())

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestUpdateReportStatus_RevertToCreatedRejected(t *testing.T) {
	// Подготовка
	service, _ := newTestReportService(t)
	ctx := context.Background()

	// Действие: возврат в CREATED отклоняется до обращения к бд
	report, err := service.UpdateReportStatus(ctx, uuid.New(), models.StatusCreated, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestUpdateReportStatus_ReportNotFound(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)).Times(1)

	// Действие
	report, err := service.UpdateReportStatus(ctx, reportID, models.StatusInProgress, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateReportStatus_NoAssignedVolunteer(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(&models.Report{ID: reportID, Status: models.StatusCreated}, nil).Times(1)

	// Действие
	report, err := service.UpdateReportStatus(ctx, reportID, models.StatusCancelled, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateReportStatus_NonAssignedVolunteerForbidden(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	assignedVolunteer := availableVolunteer(uuid.New())
	assignedID := assignedVolunteer.ID
	strangerUserID := uuid.New()

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(&models.Report{ID: reportID, Status: models.StatusAssigned, VolunteerID: &assignedID}, nil).Times(1)
	m.volunteers.EXPECT().GetByID(ctx, assignedID).Return(assignedVolunteer, nil).Times(1)
	// Журнал и рассылка НЕ вызываются

	// Действие
	report, err := service.UpdateReportStatus(ctx, reportID, models.StatusInProgress, strangerUserID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateReportStatus_InvalidTransition(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	volunteer := availableVolunteer(userID)
	volunteerID := volunteer.ID

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(&models.Report{ID: reportID, Status: models.StatusAssigned, VolunteerID: &volunteerID}, nil).Times(1)
	m.volunteers.EXPECT().GetByID(ctx, volunteerID).Return(volunteer, nil).Times(1)

	// Действие: ASSIGNED -> COMPLETED перескакивает IN_PROGRESS
	report, err := service.UpdateReportStatus(ctx, reportID, models.StatusCompleted, userID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestUpdateReportStatus_ConcurrentChangeConflict(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()
	volunteer := availableVolunteer(userID)
	volunteerID := volunteer.ID

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(&models.Report{ID: reportID, Status: models.StatusAssigned, VolunteerID: &volunteerID}, nil).Times(1)
	m.volunteers.EXPECT().GetByID(ctx, volunteerID).Return(volunteer, nil).Times(1)
	// Статус успел измениться между чтением и условным обновлением
	m.reports.EXPECT().
		UpdateStatusIf(ctx, reportID, models.StatusInProgress, models.StatusAssigned).
		Return(int64(0), nil).Times(1)

	// Действие
	report, err := service.UpdateReportStatus(ctx, reportID, models.StatusInProgress, userID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestReportHistory_Success(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := []*models.TaskHistory{
		{ID: uuid.New(), ReportID: reportID, OldStatus: models.StatusCreated, NewStatus: models.StatusAssigned},
	}

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).Return(&models.Report{ID: reportID}, nil).Times(1)
	m.history.EXPECT().ListByReport(ctx, reportID).Return(expected, nil).Times(1)

	// Действие
	entries, err := service.ReportHistory(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestReportHistory_ReportNotFound(t *testing.T) {
	// Подготовка
	service, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	// Ожидания
	m.reports.EXPECT().GetByID(ctx, reportID).
		Return(nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)).Times(1)

	// Действие
	entries, err := service.ReportHistory(ctx, reportID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
