package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType - вид уведомления
type NotificationType string

const (
	NotificationAssignment   NotificationType = "ASSIGNMENT"
	NotificationStatusChange NotificationType = "STATUS_CHANGE"
	NotificationComment      NotificationType = "COMMENT"
	NotificationInfo         NotificationType = "INFO"
	NotificationAlert        NotificationType = "ALERT"
)

// Notification - внутриприкладное уведомление. Запись append-only:
// после создания не изменяется и не удаляется.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Message   string           `json:"message"`
	Recipient ActorRef         `json:"recipient"`
	ReportID  *uuid.UUID       `json:"report_id,omitempty"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationRecipient - один адресат события с отрендеренным сообщением
type NotificationRecipient struct {
	Actor   ActorRef
	Email   string
	Subject string
	Message string
}

// NotificationEvent - событие изменения состояния для рассылки
type NotificationEvent struct {
	Kind       NotificationType
	ReportID   *uuid.UUID
	Recipients []NotificationRecipient
}
