package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/urban_response_system/internal/models"
)

const (
	emailQueueKey = "email_deliveries"
)

// EmailTask - задание на отправку одного письма
type EmailTask struct {
	To         string                  `json:"to"`
	Subject    string                  `json:"subject"`
	Body       string                  `json:"body"`
	Kind       models.NotificationType `json:"kind"`
	ReportID   *uuid.UUID              `json:"report_id,omitempty"`
	EnqueuedAt time.Time               `json:"enqueued_at"`
}

// Publisher - интерфейс для постановки писем в очередь доставки
type Publisher interface {
	Publish(ctx context.Context, task EmailTask) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет задание в очередь Redis.
// Доставка best-effort: вызывающая сторона логирует ошибку и продолжает.
func (p *RedisPublisher) Publish(ctx context.Context, task EmailTask) error {
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal email task: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPOP-ом справа
	if err := p.redisClient.LPush(ctx, emailQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish email task to Redis: %w", err)
	}
	return nil
}
