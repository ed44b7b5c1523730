package models

import (
	"time"

	"github.com/google/uuid"
)

// User - учетная запись (горожанин либо аккаунт, на который ссылается волонтер)
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	UserType  ActorType `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
