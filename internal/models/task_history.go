package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskHistory - запись аудита перехода статуса, одна строка на переход
type TaskHistory struct {
	ID        uuid.UUID `json:"id"`
	ReportID  uuid.UUID `json:"report_id"`
	OldStatus Status    `json:"old_status"`
	NewStatus Status    `json:"new_status"`
	ChangedBy ActorRef  `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}
