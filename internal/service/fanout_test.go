package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/urban_response_system/internal/delivery"
	delivery_mocks "github.com/shenikar/urban_response_system/internal/delivery/mocks"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/shenikar/urban_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestFanout — вспомогательная функция для создания инстанса рассылки с моками.
func newTestFanout(t *testing.T) (NotificationFanout, *mocks.MockNotificationRepository, *delivery_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)
	publisherMock := delivery_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewNotificationFanout(notificationsMock, publisherMock, logger), notificationsMock, publisherMock
}

func assignmentEvent(reportID uuid.UUID) models.NotificationEvent {
	return models.NotificationEvent{
		Kind:     models.NotificationAssignment,
		ReportID: &reportID,
		Recipients: []models.NotificationRecipient{
			{
				Actor:   models.CitizenRef(uuid.New()),
				Email:   "citizen@example.com",
				Subject: "Your report has been claimed",
				Message: "Иван has claimed your report: Прорыв трубы",
			},
			{
				Actor:   models.VolunteerRef(uuid.New()),
				Email:   "volunteer@example.com",
				Subject: "You have a new assignment",
				Message: "You have been assigned to: Прорыв трубы",
			},
		},
	}
}

func TestNotify_PersistsAndEnqueuesPerRecipient(t *testing.T) {
	// Подготовка
	fanout, notificationsMock, publisherMock := newTestFanout(t)
	ctx := context.Background()
	reportID := uuid.New()
	event := assignmentEvent(reportID)

	// Ожидания: на каждого адресата — запись уведомления и задание на письмо
	notificationsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, n *models.Notification) {
			assert.Equal(t, models.NotificationAssignment, n.Type)
			assert.Equal(t, &reportID, n.ReportID)
		}).Return(nil).Times(2)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие
	fanout.Notify(ctx, event)
}

func TestNotify_PersistsEvenWhenPublishFails(t *testing.T) {
	// Подготовка
	fanout, notificationsMock, publisherMock := newTestFanout(t)
	ctx := context.Background()
	event := assignmentEvent(uuid.New())

	// Ожидания: сбой очереди не мешает записи уведомлений
	notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(2)

	// Действие: метод ничего не возвращает и не должен паниковать
	fanout.Notify(ctx, event)
}

func TestNotify_PersistFailureDoesNotStopOtherRecipients(t *testing.T) {
	// Подготовка
	fanout, notificationsMock, publisherMock := newTestFanout(t)
	ctx := context.Background()
	event := assignmentEvent(uuid.New())

	// Ожидания: сбой записи первого адресата, второй обрабатывается полностью
	gomock.InOrder(
		notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("db down")).Times(1),
		notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1),
	)
	// Письма уходят обоим: durable-запись и доставка независимы
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие
	fanout.Notify(ctx, event)
}

func TestNotify_SkipsDeliveryForRecipientWithoutEmail(t *testing.T) {
	// Подготовка
	fanout, notificationsMock, publisherMock := newTestFanout(t)
	ctx := context.Background()
	reportID := uuid.New()
	event := models.NotificationEvent{
		Kind:     models.NotificationStatusChange,
		ReportID: &reportID,
		Recipients: []models.NotificationRecipient{
			{
				Actor:   models.CitizenRef(uuid.New()),
				Email:   "",
				Subject: "Your report status has changed",
				Message: "Your report moved from ASSIGNED to IN_PROGRESS",
			},
		},
	}

	// Ожидания: уведомление записывается, письмо не ставится
	notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	fanout.Notify(ctx, event)
}

func TestNotify_EnqueuedTaskCarriesRecipientFields(t *testing.T) {
	// Подготовка
	fanout, notificationsMock, publisherMock := newTestFanout(t)
	ctx := context.Background()
	reportID := uuid.New()
	event := models.NotificationEvent{
		Kind:     models.NotificationAssignment,
		ReportID: &reportID,
		Recipients: []models.NotificationRecipient{
			{
				Actor:   models.VolunteerRef(uuid.New()),
				Email:   "volunteer@example.com",
				Subject: "You have a new assignment",
				Message: "You have been assigned to: Прорыв трубы",
			},
		},
	}

	// Ожидания
	notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, task delivery.EmailTask) {
			assert.Equal(t, "volunteer@example.com", task.To)
			assert.Equal(t, "You have a new assignment", task.Subject)
			assert.Equal(t, "You have been assigned to: Прорыв трубы", task.Body)
			assert.Equal(t, models.NotificationAssignment, task.Kind)
			require.NotNil(t, task.ReportID)
			assert.Equal(t, reportID, *task.ReportID)
		}).Return(nil).Times(1)

	// Действие
	fanout.Notify(ctx, event)
}

func TestListByRecipient_DelegatesToRepository(t *testing.T) {
	// Подготовка
	fanout, notificationsMock, _ := newTestFanout(t)
	ctx := context.Background()
	recipient := models.CitizenRef(uuid.New())
	expected := []*models.Notification{{ID: uuid.New(), Recipient: recipient}}

	// Ожидания
	notificationsMock.EXPECT().ListByRecipient(ctx, recipient).Return(expected, nil).Times(1)

	// Действие
	notifications, err := fanout.ListByRecipient(ctx, recipient)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}
