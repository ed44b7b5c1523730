package service

import (
	"bytes"
	"context"
	"fmt"
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

// newTestVolunteerService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestVolunteerService(t *testing.T) (*volunteerService, *mocks.MockVolunteerRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	volunteersMock := mocks.NewMockVolunteerRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AlertRadiusKm: 5,
	}

	service := NewVolunteerService(volunteersMock, usersMock, logger, cfg)
	return service.(*volunteerService), volunteersMock, usersMock
}

func TestRegisterVolunteer_Success_CreateThenLink(t *testing.T) {
	// Подготовка
	service, volunteersMock, usersMock := newTestVolunteerService(t)
	ctx := context.Background()
	accountID := uuid.New()
	user := &models.User{
		Email: "volunteer@example.com",
		Name:  "Петр",
	}
	volunteer := &models.Volunteer{
		Vtype:        models.VolunteerTypeVolunteer,
		Area:         "Центральный район",
		Latitude:     12.90,
		Longitude:    77.58,
		Availability: true,
	}

	// Ожидания: сначала учетка, потом запись волонтера со ссылкой на нее
	usersMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, models.ActorVolunteer, u.UserType)
			u.ID = accountID
			return nil
		}).Times(1)

	volunteersMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, v *models.Volunteer) error {
			assert.Equal(t, accountID, v.UserID)
			v.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	created, err := service.RegisterVolunteer(ctx, user, volunteer)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, accountID, created.UserID)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestRegisterVolunteer_NGOAccountType(t *testing.T) {
	// Подготовка
	service, volunteersMock, usersMock := newTestVolunteerService(t)
	ctx := context.Background()
	user := &models.User{Email: "ngo@example.com", Name: "Фонд"}
	volunteer := &models.Volunteer{Vtype: models.VolunteerTypeNGO}

	// Ожидания
	usersMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, models.ActorNGO, u.UserType)
			u.ID = uuid.New()
			return nil
		}).Times(1)
	volunteersMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	_, err := service.RegisterVolunteer(ctx, user, volunteer)

	// Проверки
	require.NoError(t, err)
}

func TestRegisterVolunteer_EmptyEmail(t *testing.T) {
	// Подготовка
	service, _, _ := newTestVolunteerService(t)
	ctx := context.Background()

	// Действие
	created, err := service.RegisterVolunteer(ctx, &models.User{Email: "  "}, &models.Volunteer{})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestRegisterVolunteer_AccountCreateFails(t *testing.T) {
	// Подготовка
	service, _, usersMock := newTestVolunteerService(t)
	ctx := context.Background()
	user := &models.User{Email: "volunteer@example.com"}

	// Ожидания: запись волонтера не создается, если учетка не создалась
	usersMock.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("db down")).Times(1)

	// Действие
	created, err := service.RegisterVolunteer(ctx, user, &models.Volunteer{})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorContains(t, err, "could not create account")
}

func TestGetVolunteer_NotFound(t *testing.T) {
	// Подготовка
	service, volunteersMock, _ := newTestVolunteerService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	volunteersMock.EXPECT().GetByID(ctx, id).
		Return(nil, fmt.Errorf("volunteer: %w", apperrors.ErrNotFound)).Times(1)

	// Действие
	volunteer, err := service.GetVolunteer(ctx, id)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, volunteer)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateAvailability_Success(t *testing.T) {
	// Подготовка
	service, volunteersMock, _ := newTestVolunteerService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Volunteer{ID: id, Availability: false}

	// Ожидания
	volunteersMock.EXPECT().UpdateAvailability(ctx, id, false).Return(nil).Times(1)
	volunteersMock.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1)

	// Действие
	volunteer, err := service.UpdateAvailability(ctx, id, false)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, volunteer)
}

func TestNearbyVolunteers_FiltersByRadius(t *testing.T) {
	// Подготовка
	service, volunteersMock, _ := newTestVolunteerService(t)
	ctx := context.Background()

	near := &models.Volunteer{ID: uuid.New(), Latitude: 12.93, Longitude: 77.60, Availability: true}
	far := &models.Volunteer{ID: uuid.New(), Latitude: 13.05, Longitude: 77.58, Availability: true}

	// Ожидания: репозиторий уже отфильтровал недоступных
	volunteersMock.EXPECT().ListAvailable(ctx).Return([]*models.Volunteer{near, far}, nil).Times(1)

	// Действие
	volunteers, err := service.NearbyVolunteers(ctx, 12.90, 77.58)

	// Проверки
	require.NoError(t, err)
	require.Len(t, volunteers, 1)
	assert.Equal(t, near.ID, volunteers[0].ID)
}
