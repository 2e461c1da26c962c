package domain

import (
	"time"

	"github.com/google/uuid"
)

// Matter is a legislative proposal voted independently of any document.
type Matter struct {
	ID              uuid.UUID
	Title           string
	Description     *string
	Type            string
	Status          MatterStatus
	VotingStartedAt *time.Time
	VotingEndedAt   *time.Time
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MatterUpdateParams holds optional matter fields to change.
type MatterUpdateParams struct {
	Title       *string
	Description *string
	Type        *string
	Status      *MatterStatus
}

// MatterFilter narrows a matter listing.
type MatterFilter struct {
	SessionID *uuid.UUID
	Status    *MatterStatus
	Limit     int
	Offset    int
}
