package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is a fire-and-forget event describing a state change or a
// sensitive read.
type AuditRecord struct {
	ID        uuid.UUID      `db:"id"`
	ActorID   *uuid.UUID     `db:"actor_id"`
	Action    AuditAction    `db:"action"`
	Details   map[string]any `db:"details"`
	IPAddress *string        `db:"ip_address"`
	UserAgent *string        `db:"user_agent"`
	CreatedAt time.Time      `db:"created_at"`
}
