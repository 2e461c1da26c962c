package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxPhaseLabelLen  = 100
)

// CreateSessionInput holds the parameters for opening a new session record.
// Every field is optional.
type CreateSessionInput struct {
	Title       *string
	Description *string
	ScheduledAt *time.Time
	Quorum      *int
}

// Validate checks all fields and collects all errors.
func (i CreateSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be blank"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Quorum != nil && *i.Quorum <= 0 {
		errs = append(errs, domain.FieldError{Field: "quorum", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSessionInput holds the session fields to change. A nil field is
// left untouched; an empty description clears it.
type UpdateSessionInput struct {
	SessionID   uuid.UUID
	Title       *string
	Description *string
	ScheduledAt *time.Time
	Quorum      *int
}

// Validate checks all fields and collects all errors.
func (i UpdateSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.ScheduledAt == nil && i.Quorum == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be blank"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Quorum != nil && *i.Quorum <= 0 {
		errs = append(errs, domain.FieldError{Field: "quorum", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetPhaseInput moves a session to Status.
type SetPhaseInput struct {
	SessionID uuid.UUID
	Status    domain.SessionStatus
}

// Validate checks all fields and collects all errors.
func (i SetPhaseInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown phase"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartTimerInput starts the session-wide countdown.
type StartTimerInput struct {
	SessionID       uuid.UUID
	DurationSeconds int
	Phase           *string
}

func (i StartTimerInput) validate(maxTimer time.Duration) error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.DurationSeconds <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration_seconds", Message: "must be positive"})
	} else if time.Duration(i.DurationSeconds)*time.Second > maxTimer {
		errs = append(errs, domain.FieldError{Field: "duration_seconds", Message: "exceeds the maximum timer length"})
	}
	if i.Phase != nil && len(*i.Phase) > maxPhaseLabelLen {
		errs = append(errs, domain.FieldError{Field: "phase", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListSessionsInput filters and pages the session list.
type ListSessionsInput struct {
	Status *domain.SessionStatus
	Year   *int
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown phase"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError(field, "required")
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
