package models

import (
	"github.com/google/uuid"
)

// ActorType определяет, какому агрегату принадлежит id в ActorRef
type ActorType string

const (
	ActorCitizen    ActorType = "CITIZEN"
	ActorVolunteer  ActorType = "VOLUNTEER"
	ActorNGO        ActorType = "NGO"
	ActorGovernment ActorType = "GOVERNMENT"
)

// ActorRef - типизированная ссылка "тип агрегата + id".
// Это не внешний ключ: получателем уведомления или автором перехода
// может быть как учетная запись горожанина, так и запись волонтера.
type ActorRef struct {
	Type ActorType `json:"type"`
	ID   uuid.UUID `json:"id"`
}

func CitizenRef(id uuid.UUID) ActorRef {
	return ActorRef{Type: ActorCitizen, ID: id}
}

func VolunteerRef(id uuid.UUID) ActorRef {
	return ActorRef{Type: ActorVolunteer, ID: id}
}

func NGORef(id uuid.UUID) ActorRef {
	return ActorRef{Type: ActorNGO, ID: id}
}

func GovernmentRef(id uuid.UUID) ActorRef {
	return ActorRef{Type: ActorGovernment, ID: id}
}

// Valid проверяет, что тип актора известен
func (t ActorType) Valid() bool {
	switch t {
	case ActorCitizen, ActorVolunteer, ActorNGO, ActorGovernment:
		return true
	}
	return false
}

// Valid проверяет, что ссылка указывает на известный тип актора
func (r ActorRef) Valid() bool {
	return r.Type.Valid() && r.ID != uuid.Nil
}
