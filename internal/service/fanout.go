package service

import (
	"context"

	"github.com/shenikar/urban_response_system/internal/delivery"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// NotificationRepository определяет контракт для работы с бд уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, recipient models.ActorRef) ([]*models.Notification, error)
	CountByRecipient(ctx context.Context, recipient models.ActorRef) (int, error)
}

// NotificationFanout разводит событие по адресатам: durable-запись
// уведомления плюс best-effort доставка. Ошибки за эту границу не выходят.
type NotificationFanout interface {
	Notify(ctx context.Context, event models.NotificationEvent)
	ListByRecipient(ctx context.Context, recipient models.ActorRef) ([]*models.Notification, error)
}

type notificationFanout struct {
	notifications NotificationRepository
	publisher     delivery.Publisher
	logger        *logrus.Logger
}

func NewNotificationFanout(notifications NotificationRepository, publisher delivery.Publisher, logger *logrus.Logger) NotificationFanout {
	return &notificationFanout{
		notifications: notifications,
		publisher:     publisher,
		logger:        logger,
	}
}

// Notify обрабатывает каждого адресата независимо:
// 1) запись Notification сохраняется синхронно, до возврата запроса;
// 2) письмо лишь ставится в очередь - сбой почтового пути не способен
// откатить уже зафиксированный захват или переход.
// Метод ничего не возвращает: это граница поглощения ошибок доставки.
func (f *notificationFanout) Notify(ctx context.Context, event models.NotificationEvent) {
	log := f.logger.WithFields(logrus.Fields{
		"service": "fanout",
		"kind":    event.Kind,
	})

	for _, recipient := range event.Recipients {
		notification := &models.Notification{
			Message:   recipient.Message,
			Recipient: recipient.Actor,
			ReportID:  event.ReportID,
			Type:      event.Kind,
		}
		if err := f.notifications.Create(ctx, notification); err != nil {
			// Запись дешевая и локальная: сбой здесь - повод для громкого лога,
			// но не для отказа вызывающей операции
			log.WithError(err).WithField("recipient", recipient.Actor).Error("Failed to persist notification")
		}

		if recipient.Email == "" {
			log.WithField("recipient", recipient.Actor).Debug("Recipient has no email, skipping delivery")
			continue
		}

		task := delivery.EmailTask{
			To:       recipient.Email,
			Subject:  recipient.Subject,
			Body:     recipient.Message,
			Kind:     event.Kind,
			ReportID: event.ReportID,
		}
		if err := f.publisher.Publish(ctx, task); err != nil {
			log.WithError(err).WithField("to", recipient.Email).Warn("Failed to enqueue email delivery")
		}
	}
}

// ListByRecipient возвращает уведомления адресата
func (f *notificationFanout) ListByRecipient(ctx context.Context, recipient models.ActorRef) ([]*models.Notification, error) {
	return f.notifications.ListByRecipient(ctx, recipient)
}
