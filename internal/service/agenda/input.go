package agenda

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

const (
	maxTitleLen       = 300
	maxLabelLen       = 100
	maxAuthorLen      = 200
	maxDescriptionLen = 5000
)

// CreateDocumentInput holds the parameters for adding a document to a session.
type CreateDocumentInput struct {
	SessionID   uuid.UUID
	Title       string
	Type        string
	Phase       string
	Author      *string
	Description *string
	OrderIndex  *int
}

// Validate checks all fields and collects all errors.
func (i CreateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	errs = requiredText(errs, "title", i.Title, maxTitleLen)
	errs = requiredText(errs, "type", i.Type, maxLabelLen)
	errs = requiredText(errs, "phase", i.Phase, maxLabelLen)
	errs = optionalText(errs, "author", i.Author, maxAuthorLen)
	errs = optionalText(errs, "description", i.Description, maxDescriptionLen)
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateDocumentInput holds the document fields to change. An empty author
// or description clears it.
type UpdateDocumentInput struct {
	DocumentID  uuid.UUID
	Title       *string
	Type        *string
	Phase       *string
	Author      *string
	Description *string
	OrderIndex  *int
}

// Validate checks all fields and collects all errors.
func (i UpdateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	if i.Title == nil && i.Type == nil && i.Phase == nil && i.Author == nil &&
		i.Description == nil && i.OrderIndex == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = requiredText(errs, "title", *i.Title, maxTitleLen)
	}
	if i.Type != nil {
		errs = requiredText(errs, "type", *i.Type, maxLabelLen)
	}
	if i.Phase != nil {
		errs = requiredText(errs, "phase", *i.Phase, maxLabelLen)
	}
	errs = optionalText(errs, "author", i.Author, maxAuthorLen)
	errs = optionalText(errs, "description", i.Description, maxDescriptionLen)
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateMatterInput holds the parameters for a new matter. When SessionID
// is set the matter is attached to that session right away.
type CreateMatterInput struct {
	Title       string
	Type        string
	Description *string
	SessionID   *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateMatterInput) Validate() error {
	var errs []domain.FieldError

	errs = requiredText(errs, "title", i.Title, maxTitleLen)
	errs = requiredText(errs, "type", i.Type, maxLabelLen)
	errs = optionalText(errs, "description", i.Description, maxDescriptionLen)
	if i.SessionID != nil && *i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMatterInput holds the matter fields to change. VOTING is only
// entered through the voting operations.
type UpdateMatterInput struct {
	MatterID    uuid.UUID
	Title       *string
	Type        *string
	Description *string
	Status      *domain.MatterStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateMatterInput) Validate() error {
	var errs []domain.FieldError

	if i.MatterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "matter_id", Message: "required"})
	}
	if i.Title == nil && i.Type == nil && i.Description == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = requiredText(errs, "title", *i.Title, maxTitleLen)
	}
	if i.Type != nil {
		errs = requiredText(errs, "type", *i.Type, maxLabelLen)
	}
	errs = optionalText(errs, "description", i.Description, maxDescriptionLen)
	if i.Status != nil {
		switch {
		case !i.Status.IsValid():
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		case *i.Status == domain.MatterStatusVoting:
			errs = append(errs, domain.FieldError{Field: "status", Message: "use the voting operations"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListMattersInput filters and pages the matter list.
type ListMattersInput struct {
	SessionID *uuid.UUID
	Status    *domain.MatterStatus
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListMattersInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func requiredText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(value) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func optionalText(errs []domain.FieldError, field string, value *string, maxLen int) []domain.FieldError {
	if value != nil && len(strings.TrimSpace(*value)) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError(field, "required")
	}
	return nil
}
