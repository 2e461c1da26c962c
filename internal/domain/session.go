package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultQuorum is the minimum presence used when a session is created
// without an explicit quorum.
const DefaultQuorum = 7

// Session is a single council sitting.
type Session struct {
	ID          uuid.UUID
	Number      SessionNumber
	Title       string
	Description *string
	ScheduledAt time.Time
	Status      SessionStatus
	Quorum      int

	IsAttendanceOpen    bool
	AttendanceStartedAt *time.Time
	AttendanceEndedAt   *time.Time

	IsSpeechRequestsOpen bool

	Timer SessionTimer

	StartedAt *time.Time
	ClosedAt  *time.Time
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the session has ended.
func (s *Session) IsClosed() bool {
	return s.Status == SessionStatusClosed
}

// DefaultSessionTitle returns the title used when none is given.
func DefaultSessionTitle(n SessionNumber) string {
	return "Sessão Ordinária " + n.String()
}

// SessionNumber is the human-readable "NNN/YYYY" identifier, sequential
// within a calendar year.
type SessionNumber struct {
	Seq  int
	Year int
}

// String formats the number as NNN/YYYY.
func (n SessionNumber) String() string {
	return fmt.Sprintf("%03d/%d", n.Seq, n.Year)
}

// Next returns the number that follows n within year. A zero n or a number
// from another year restarts the sequence at 001.
func (n SessionNumber) Next(year int) SessionNumber {
	if n.Year != year || n.Seq <= 0 {
		return SessionNumber{Seq: 1, Year: year}
	}
	return SessionNumber{Seq: n.Seq + 1, Year: year}
}

// ParseSessionNumber parses a "NNN/YYYY" string.
func ParseSessionNumber(s string) (SessionNumber, error) {
	seqPart, yearPart, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return SessionNumber{}, fmt.Errorf("session number %q: missing '/'", s)
	}
	seq, err := strconv.Atoi(seqPart)
	if err != nil || seq <= 0 {
		return SessionNumber{}, fmt.Errorf("session number %q: invalid sequence", s)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 1000 || year > 9999 {
		return SessionNumber{}, fmt.Errorf("session number %q: invalid year", s)
	}
	return SessionNumber{Seq: seq, Year: year}, nil
}

// SessionTimer is the session-wide display timer. Remaining time is
// derived from StartedAt and Duration on every read.
type SessionTimer struct {
	StartedAt *time.Time
	Duration  time.Duration
	Phase     *string
}

// IsSet reports whether a timer has been started and not stopped.
func (t SessionTimer) IsSet() bool {
	return t.StartedAt != nil && t.Duration > 0
}

// Remaining returns the time left at now, never negative.
func (t SessionTimer) Remaining(now time.Time) time.Duration {
	if !t.IsSet() {
		return 0
	}
	return Remaining(*t.StartedAt, t.Duration, now)
}

// Remaining returns max(0, limit - (now - startedAt)).
func Remaining(startedAt time.Time, limit time.Duration, now time.Time) time.Duration {
	left := limit - now.Sub(startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// SessionUpdateParams holds optional session fields to change.
// A nil field is left untouched.
type SessionUpdateParams struct {
	Title       *string
	Description *string
	ScheduledAt *time.Time
	Quorum      *int
}

// SessionFilter narrows a session listing.
type SessionFilter struct {
	Status *SessionStatus
	Year   *int
	Limit  int
	Offset int
}

// SessionSummary is a session with list-view counters.
type SessionSummary struct {
	Session
	DocumentCount int
	PresentCount  int
}
