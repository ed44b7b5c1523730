package models

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerType - тип волонтерской записи
type VolunteerType string

const (
	VolunteerTypeVolunteer  VolunteerType = "VOLUNTEER"
	VolunteerTypeNGO        VolunteerType = "NGO"
	VolunteerTypeGovernment VolunteerType = "GOVERNMENT"
)

// Volunteer - полевой волонтер (или НКО/госслужба).
// UserID ссылается на учетную запись: волонтер создает ее при регистрации,
// но не владеет ее жизненным циклом - удаление волонтера не трогает учетку.
type Volunteer struct {
	ID           uuid.UUID     `json:"id"`
	Vtype        VolunteerType `json:"vtype"`
	Area         string        `json:"area"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	Availability bool          `json:"availability"`
	Skill        string        `json:"skill,omitempty"`
	UserID       uuid.UUID     `json:"user_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Coordinates возвращает координаты волонтера для гео-фильтрации
func (v *Volunteer) Coordinates() (float64, float64) {
	return v.Latitude, v.Longitude
}

// ActorRef возвращает типизированную ссылку на волонтера как на получателя/актора
func (v *Volunteer) ActorRef() ActorRef {
	switch v.Vtype {
	case VolunteerTypeNGO:
		return NGORef(v.ID)
	case VolunteerTypeGovernment:
		return GovernmentRef(v.ID)
	default:
		return VolunteerRef(v.ID)
	}
}
