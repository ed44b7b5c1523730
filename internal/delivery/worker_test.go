package delivery

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/shenikar/urban_response_system/internal/delivery/mocks"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

// newTestWorker — вспомогательная функция для создания воркера с мок-отправителем.
func newTestWorker(t *testing.T) (*Worker, *mocks.MockEmailSender) {
	ctrl := gomock.NewController(t)
	senderMock := mocks.NewMockEmailSender(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DeliveryMaxRetries: 3,
		DeliveryBaseDelay:  time.Millisecond,
	}

	return NewWorker(nil, logger, cfg, senderMock), senderMock
}

func emailTask() EmailTask {
	return EmailTask{
		To:      "volunteer@example.com",
		Subject: "You have a new assignment",
		Body:    "You have been assigned to: Прорыв трубы",
		Kind:    models.NotificationAssignment,
	}
}

func TestDeliver_Success_FirstAttempt(t *testing.T) {
	// Подготовка
	worker, senderMock := newTestWorker(t)
	task := emailTask()

	// Ожидания
	senderMock.EXPECT().Send(task.To, task.Subject, task.Body).Return(nil).Times(1)

	// Действие
	worker.deliver(task)
}

func TestDeliver_RetriesThenSucceeds(t *testing.T) {
	// Подготовка
	worker, senderMock := newTestWorker(t)
	task := emailTask()

	// Ожидания: два сбоя, третья попытка успешна
	gomock.InOrder(
		senderMock.EXPECT().Send(task.To, task.Subject, task.Body).Return(fmt.Errorf("smtp timeout")).Times(2),
		senderMock.EXPECT().Send(task.To, task.Subject, task.Body).Return(nil).Times(1),
	)

	// Действие
	worker.deliver(task)
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	// Подготовка
	worker, senderMock := newTestWorker(t)
	task := emailTask()

	// Ожидания: ровно maxRetries попыток, затем письмо теряется без паники
	senderMock.EXPECT().
		Send(task.To, task.Subject, task.Body).
		Return(fmt.Errorf("smtp timeout")).
		Times(3)

	// Действие
	worker.deliver(task)
}

func TestDeliver_ZeroMaxRetriesStillAttemptsOnce(t *testing.T) {
	// Подготовка
	worker, senderMock := newTestWorker(t)
	worker.cfg.DeliveryMaxRetries = 0
	task := emailTask()

	// Ожидания
	senderMock.EXPECT().Send(task.To, task.Subject, task.Body).Return(nil).Times(1)

	// Действие
	worker.deliver(task)
}
