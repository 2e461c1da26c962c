package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConflictError is returned when an operation would break a uniqueness rule
// or a state precondition (duplicate vote, competing active vote, etc.).
// The state is never changed when it is returned.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError with a human-readable reason.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// Conflict reasons shared by services and transport.
const (
	ReasonSessionAlreadyActive = "another session is not closed"
	ReasonVotingInProgress     = "another item is already in voting"
	ReasonNotInVoting          = "item is not in voting"
	ReasonAlreadyVoted         = "already voted"
	ReasonAlreadyPresent       = "attendance already registered"
	ReasonAttendanceClosed     = "attendance is closed"
	ReasonSpeechRequestsClosed = "speech requests are closed"
	ReasonSpeechNotApproved    = "speech request is not approved"
	ReasonSpeechAlreadyDone    = "speech request has already spoken"
	ReasonSessionNotScheduled  = "session is not scheduled"
	ReasonSessionClosed        = "session is closed"
	ReasonItemInVoting         = "item is in voting"
	ReasonDocumentHasVotes     = "document already has votes"
	ReasonSpeechStarted        = "speech request has already started"
	ReasonNotResolved          = "voting has not ended for this item"
	ReasonSpeaking             = "speech request holds the floor"
)
