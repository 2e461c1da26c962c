package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is the presence record of a voter in a session.
type Attendance struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	VoterID   uuid.UUID
	IsPresent bool
	ArrivedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttendanceEntry is one line of the public attendance board.
type AttendanceEntry struct {
	VoterID   uuid.UUID  `db:"voter_id"`
	IsPresent bool       `db:"is_present"`
	ArrivedAt *time.Time `db:"arrived_at"`
}

// Quorum is the live presence count of a session.
type Quorum struct {
	PresentCount int
	Required     int
}

// HasQuorum reports whether enough voters are present.
func (q Quorum) HasQuorum() bool {
	return q.PresentCount >= q.Required
}
