package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest DTO для создания заявки
// @Description DTO для создания заявки
type CreateReportRequest struct {
	CitizenID   uuid.UUID `json:"citizen_id" validate:"required"`
	Description string    `json:"description" validate:"required,min=2,max=500"`
	Location    string    `json:"location" validate:"required,max=200"`
	ImagePath   string    `json:"image_path,omitempty"`
	Latitude    float64   `json:"latitude" validate:"required,latitude"`
	Longitude   float64   `json:"longitude" validate:"required,longitude"`
	Category    string    `json:"category" validate:"required,oneof=ROAD WATER ELECTRICITY SANITATION HEALTH SAFETY OTHER"`
}

// StatusUpdateRequest DTO для смены статуса заявки.
// VolunteerID - id учетной записи действующего волонтера.
// @Description DTO для смены статуса заявки
type StatusUpdateRequest struct {
	NewStatus   string    `json:"new_status" validate:"required"`
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
}

// RegisterVolunteerRequest DTO для регистрации волонтера вместе с учеткой
// @Description DTO для регистрации волонтера
type RegisterVolunteerRequest struct {
	User         AccountPayload `json:"user" validate:"required"`
	Vtype        string         `json:"vtype" validate:"required,oneof=VOLUNTEER NGO GOVERNMENT"`
	Area         string         `json:"area" validate:"required,max=100"`
	Latitude     float64        `json:"latitude" validate:"required,latitude"`
	Longitude    float64        `json:"longitude" validate:"required,longitude"`
	Availability bool           `json:"availability"`
	Skill        string         `json:"skill,omitempty" validate:"max=200"`
}

// AccountPayload - данные учетной записи при регистрации
type AccountPayload struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Mobile string `json:"mobile,omitempty" validate:"max=15"`
}

// AvailabilityRequest DTO для переключения доступности волонтера
// @Description DTO для переключения доступности
type AvailabilityRequest struct {
	Availability *bool `json:"availability" validate:"required"`
}

// AlertRequest DTO для рассылки тревоги
// @Description DTO для рассылки тревоги
type AlertRequest struct {
	Type      string  `json:"type" validate:"required,max=100"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// ReportResponse DTO для ответа с информацией о заявке
// @Description DTO для ответа с информацией о заявке
type ReportResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImagePath   string     `json:"image_path,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	CitizenID   uuid.UUID  `json:"citizen_id"`
	VolunteerID *uuid.UUID `json:"volunteer_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// VolunteerResponse DTO для ответа с информацией о волонтере
// @Description DTO для ответа с информацией о волонтере
type VolunteerResponse struct {
	ID           uuid.UUID `json:"id"`
	Vtype        string    `json:"vtype"`
	Area         string    `json:"area"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Availability bool      `json:"availability"`
	Skill        string    `json:"skill,omitempty"`
	UserID       uuid.UUID `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Message       string     `json:"message"`
	RecipientType string     `json:"recipient_type"`
	RecipientID   uuid.UUID  `json:"recipient_id"`
	ReportID      *uuid.UUID `json:"report_id,omitempty"`
	Type          string     `json:"type"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TaskHistoryResponse DTO для записи журнала переходов
// @Description DTO для записи журнала переходов
type TaskHistoryResponse struct {
	ID            uuid.UUID `json:"id"`
	ReportID      uuid.UUID `json:"report_id"`
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	ChangedByType string    `json:"changed_by_type"`
	ChangedByID   uuid.UUID `json:"changed_by_id"`
	ChangedAt     time.Time `json:"changed_at"`
}

// AlertResponse DTO для результата рассылки тревоги
// @Description DTO для результата рассылки тревоги
type AlertResponse struct {
	Notified int `json:"notified"`
}
