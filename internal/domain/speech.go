package domain

import (
	"time"

	"github.com/google/uuid"
)

// SpeechRequest is a request to speak during a session. IsSpeaking is
// derived from the council control record.
type SpeechRequest struct {
	ID                uuid.UUID
	SessionID         uuid.UUID
	UserID            *uuid.UUID
	CitizenName       *string
	CitizenProfession *string
	Type              SpeechType
	Subject           string
	IsApproved        bool
	OrderIndex        int
	IsSpeaking        bool
	HasSpoken         bool
	TimeLimit         int // minutes
	StartedAt         *time.Time
	EndedAt           *time.Time
	CreatedAt         time.Time
}

// IsCitizen reports whether the request was filed for an external citizen.
func (r *SpeechRequest) IsCitizen() bool {
	return r.UserID == nil
}

// Startable reports whether the request may be given the floor.
func (r *SpeechRequest) Startable() bool {
	return r.IsApproved && !r.HasSpoken
}

// Remaining returns the speaking time left at now. It never auto-ends the
// request; an expired request reports zero until it is explicitly ended.
func (r *SpeechRequest) Remaining(now time.Time) time.Duration {
	if r.StartedAt == nil || r.TimeLimit <= 0 {
		return 0
	}
	return Remaining(*r.StartedAt, time.Duration(r.TimeLimit)*time.Minute, now)
}

// SpeechFilter narrows a speech request listing.
type SpeechFilter struct {
	SessionID    uuid.UUID
	Type         *SpeechType
	OnlyApproved bool
	UserID       *uuid.UUID
}

// QueuePosition returns the 1-based rank of the first request owned by
// userID among approved, not yet spoken requests, assuming queue is sorted
// by OrderIndex. It returns 0 when the user has no such request.
func QueuePosition(queue []SpeechRequest, userID uuid.UUID) int {
	pos := 0
	for i := range queue {
		r := &queue[i]
		if !r.IsApproved || r.HasSpoken {
			continue
		}
		pos++
		if r.UserID != nil && *r.UserID == userID {
			return pos
		}
	}
	return 0
}
