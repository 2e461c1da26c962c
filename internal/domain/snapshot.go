package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the denormalized view of the current session polled by the
// public and admin displays. It is rebuilt on every request.
type Snapshot struct {
	Session       *Session
	ReadingDoc    *Document
	ActiveVote    *ActiveVote
	Timer         *TimerView
	ActiveSpeaker *SpeakerView
	Quorum        Quorum
	SpeechQueue   SpeechQueue
	GeneratedAt   time.Time
}

// TimerView is the session timer as seen at snapshot time.
type TimerView struct {
	Phase     *string
	Remaining time.Duration
}

// SpeakerView is the active speaker as seen at snapshot time.
type SpeakerView struct {
	Request   SpeechRequest
	Remaining time.Duration
}

// SpeechQueue holds approved requests split by type, ordered by OrderIndex.
type SpeechQueue struct {
	IsOpen              bool
	ConsideracoesFinais []SpeechRequest
	TribunaLive         []SpeechRequest
}

// CouncilorStatus is the personal view of a voter for the current session.
type CouncilorStatus struct {
	SessionID      uuid.UUID
	SessionStatus  SessionStatus
	IsPresent      bool
	ArrivedAt      *time.Time
	ActiveVote     *ActiveVote
	MyVote         *VoteType
	SpeechRequests []SpeechRequest
	QueuePosition  int
	Quorum         Quorum
}
