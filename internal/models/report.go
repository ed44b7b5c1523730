package models

import (
	"time"

	"github.com/google/uuid"
)

// Status - статус жизненного цикла заявки
type Status string

const (
	StatusCreated    Status = "CREATED"
	StatusAssigned   Status = "ASSIGNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusResolved   Status = "RESOLVED"
	StatusCancelled  Status = "CANCELLED"
	StatusRejected   Status = "REJECTED"
)

// allowedTransitions описывает граф переходов:
// CREATED -> ASSIGNED -> IN_PROGRESS -> COMPLETED -> RESOLVED,
// CANCELLED/REJECTED достижимы из любого нетерминального статуса.
var allowedTransitions = map[Status][]Status{
	StatusCreated:    {StatusAssigned, StatusCancelled, StatusRejected},
	StatusAssigned:   {StatusInProgress, StatusCancelled, StatusRejected},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusRejected},
	StatusCompleted:  {StatusResolved},
	StatusResolved:   {},
	StatusCancelled:  {},
	StatusRejected:   {},
}

// Valid проверяет, что статус известен
func (s Status) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo проверяет допустимость перехода s -> next
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Category - категория заявки
type Category string

const (
	CategoryRoad        Category = "ROAD"
	CategoryWater       Category = "WATER"
	CategoryElectricity Category = "ELECTRICITY"
	CategorySanitation  Category = "SANITATION"
	CategoryHealth      Category = "HEALTH"
	CategorySafety      Category = "SAFETY"
	CategoryOther       Category = "OTHER"
)

// Report - заявка горожанина об инциденте.
// VolunteerID заполняется только после успешного захвата заявки:
// volunteer_id != null тогда и только тогда, когда status != CREATED.
type Report struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImagePath   string     `json:"image_path,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Status      Status     `json:"status"`
	Category    Category   `json:"category"`
	CitizenID   uuid.UUID  `json:"citizen_id"`
	VolunteerID *uuid.UUID `json:"volunteer_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Coordinates возвращает координаты заявки для гео-фильтрации
func (r *Report) Coordinates() (float64, float64) {
	return r.Latitude, r.Longitude
}
