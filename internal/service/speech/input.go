package speech

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

const (
	maxSubjectLen    = 500
	maxCitizenLen    = 200
	maxProfessionLen = 200
)

// SubmitInput is a request to speak. Councilors file for themselves; the
// clerk files on behalf of a councilor (UserID) or a citizen (CitizenName).
type SubmitInput struct {
	SessionID         uuid.UUID
	Subject           string
	Type              *domain.SpeechType
	UserID            *uuid.UUID
	CitizenName       *string
	CitizenProfession *string
}

// Validate checks the fields that do not depend on the caller.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	subject := strings.TrimSpace(i.Subject)
	if subject == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	}
	if len(subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 500 characters"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be CONSIDERACOES_FINAIS or TRIBUNA_LIVE"})
	}
	if i.UserID != nil && *i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "invalid"})
	}
	if i.CitizenName != nil && len(strings.TrimSpace(*i.CitizenName)) > maxCitizenLen {
		errs = append(errs, domain.FieldError{Field: "citizen_name", Message: "max 200 characters"})
	}
	if i.CitizenProfession != nil && len(strings.TrimSpace(*i.CitizenProfession)) > maxProfessionLen {
		errs = append(errs, domain.FieldError{Field: "citizen_profession", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReorderInput moves a request to OrderIndex within its queue.
type ReorderInput struct {
	RequestID  uuid.UUID
	OrderIndex int
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartSpeechInput gives the floor to a request. A zero TimeLimitMinutes
// uses DefaultTimeLimit.
type StartSpeechInput struct {
	RequestID        uuid.UUID
	TimeLimitMinutes int
}

func (i StartSpeechInput) validate(maxMinutes int) error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.TimeLimitMinutes < 0 || i.TimeLimitMinutes > maxMinutes {
		errs = append(errs, domain.FieldError{Field: "time_limit", Message: "out of range"})
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
