package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/urban_response_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker - фоновый обработчик очереди email-доставки.
// Сбой доставки терминален для задания: после исчерпания попыток письмо
// логируется и теряется, обратно в бизнес-операцию ошибка не поднимается.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	sender      EmailSender
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, sender EmailSender) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		sender:      sender,
	}
}

// Start запускает горутину для обработки очереди доставки
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting email delivery worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping email delivery worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди),
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, emailQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop email task from Redis")
					time.Sleep(w.cfg.DeliveryBaseDelay) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				var task EmailTask
				if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal email task from Redis")
					continue
				}

				w.deliver(task)
			}
		}
	}()
}

// deliver отправляет письмо с повторами и экспоненциальной задержкой
func (w *Worker) deliver(task EmailTask) {
	log := w.logger.WithFields(logrus.Fields{
		"to":   task.To,
		"kind": task.Kind,
	})
	log.Debug("Delivering email task...")

	maxRetries := w.cfg.DeliveryMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.DeliveryBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.sender.Send(task.To, task.Subject, task.Body)
		if err == nil {
			log.Info("Email delivered successfully.")
			return
		}

		log.WithError(err).Warnf("Failed to deliver email. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if i < maxRetries-1 {
			time.Sleep(delay)
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver email after %d attempts.", maxRetries)
}
