package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/shenikar/urban_response_system/internal/delivery"
	delivery_mocks "github.com/shenikar/urban_response_system/internal/delivery/mocks"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/shenikar/urban_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockVolunteerRepository, *mocks.MockUserRepository, *delivery_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	volunteersMock := mocks.NewMockVolunteerRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)
	publisherMock := delivery_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AlertRadiusKm: 5,
	}

	service := NewAlertService(volunteersMock, usersMock, publisherMock, logger, cfg)
	return service.(*alertService), volunteersMock, usersMock, publisherMock
}

func TestDispatch_NotifiesOnlyNearbyVolunteers(t *testing.T) {
	// Подготовка
	service, volunteersMock, usersMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	near := &models.Volunteer{ID: uuid.New(), UserID: uuid.New(), Latitude: 12.93, Longitude: 77.60, Availability: true}
	far := &models.Volunteer{ID: uuid.New(), UserID: uuid.New(), Latitude: 13.05, Longitude: 77.58, Availability: true}

	// Ожидания
	volunteersMock.EXPECT().ListAvailable(ctx).Return([]*models.Volunteer{near, far}, nil).Times(1)
	usersMock.EXPECT().GetByID(ctx, near.UserID).
		Return(&models.User{ID: near.UserID, Email: "near@example.com"}, nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, task delivery.EmailTask) {
			assert.Equal(t, "near@example.com", task.To)
			assert.Equal(t, "Alert Nearby", task.Subject)
			assert.Contains(t, task.Body, "flood")
			assert.Equal(t, models.NotificationAlert, task.Kind)
		}).Return(nil).Times(1)

	// Действие
	notified, err := service.Dispatch(ctx, "flood", 12.90, 77.58)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}

func TestDispatch_ListFailureReturnsError(t *testing.T) {
	// Подготовка
	service, volunteersMock, _, _ := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	volunteersMock.EXPECT().ListAvailable(ctx).Return(nil, fmt.Errorf("db down")).Times(1)

	// Действие
	notified, err := service.Dispatch(ctx, "fire", 12.90, 77.58)

	// Проверки
	require.Error(t, err)
	assert.Zero(t, notified)
}

func TestDispatch_SkipsVolunteerWithoutEmail(t *testing.T) {
	// Подготовка
	service, volunteersMock, usersMock, _ := newTestAlertService(t)
	ctx := context.Background()
	volunteer := &models.Volunteer{ID: uuid.New(), UserID: uuid.New(), Latitude: 12.90, Longitude: 77.58, Availability: true}

	// Ожидания: учетка без email пропускается, публикация не вызывается
	volunteersMock.EXPECT().ListAvailable(ctx).Return([]*models.Volunteer{volunteer}, nil).Times(1)
	usersMock.EXPECT().GetByID(ctx, volunteer.UserID).
		Return(&models.User{ID: volunteer.UserID, Email: ""}, nil).Times(1)

	// Действие
	notified, err := service.Dispatch(ctx, "fire", 12.90, 77.58)

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, notified)
}

func TestDispatch_DeliveryFailuresAreSwallowed(t *testing.T) {
	// Подготовка
	service, volunteersMock, usersMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	first := &models.Volunteer{ID: uuid.New(), UserID: uuid.New(), Latitude: 12.90, Longitude: 77.58, Availability: true}
	second := &models.Volunteer{ID: uuid.New(), UserID: uuid.New(), Latitude: 12.91, Longitude: 77.59, Availability: true}

	// Ожидания: сбой постановки в очередь у первого не мешает второму
	volunteersMock.EXPECT().ListAvailable(ctx).Return([]*models.Volunteer{first, second}, nil).Times(1)
	usersMock.EXPECT().GetByID(ctx, first.UserID).
		Return(&models.User{ID: first.UserID, Email: "first@example.com"}, nil).Times(1)
	usersMock.EXPECT().GetByID(ctx, second.UserID).
		Return(&models.User{ID: second.UserID, Email: "second@example.com"}, nil).Times(1)

	gomock.InOrder(
		publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(1),
		publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1),
	)

	// Действие
	notified, err := service.Dispatch(ctx, "fire", 12.90, 77.58)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}

func TestDispatch_AccountLookupFailureSkipsVolunteer(t *testing.T) {
	// Подготовка
	service, volunteersMock, usersMock, _ := newTestAlertService(t)
	ctx := context.Background()
	volunteer := &models.Volunteer{ID: uuid.New(), UserID: uuid.New(), Latitude: 12.90, Longitude: 77.58, Availability: true}

	// Ожидания
	volunteersMock.EXPECT().ListAvailable(ctx).Return([]*models.Volunteer{volunteer}, nil).Times(1)
	usersMock.EXPECT().GetByID(ctx, volunteer.UserID).Return(nil, fmt.Errorf("db down")).Times(1)

	// Действие
	notified, err := service.Dispatch(ctx, "fire", 12.90, 77.58)

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, notified)
}
