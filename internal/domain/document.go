package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is a readable and votable item that belongs to a session.
// IsBeingRead and IsVoting are derived from the council control record.
type Document struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	Title        string
	Type         string
	Phase        string
	Author       *string
	Description  *string
	OrderIndex   int
	IsOrdemDoDia bool
	Approval     Approval

	IsBeingRead bool
	IsVoting    bool

	VotingStartedAt *time.Time
	VotingEndedAt   *time.Time
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DocumentUpdateParams holds optional document fields to change.
type DocumentUpdateParams struct {
	Title       *string
	Type        *string
	Phase       *string
	Author      *string
	Description *string
	OrderIndex  *int
}

// DocumentFilter narrows a document listing.
type DocumentFilter struct {
	SessionID  uuid.UUID
	OnlyAgenda bool
}
