// Package display builds the read models polled by the public panel, the
// operator console and the councilor devices. Nothing here is cached: every
// call reads the store again.
package display

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

type sessionRepo interface {
	GetCurrent(ctx context.Context) (*domain.Session, error)
}

type controlRepo interface {
	Get(ctx context.Context) (domain.Control, time.Time, error)
}

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
}

type matterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
}

type voteRepo interface {
	Tally(ctx context.Context, itemID uuid.UUID) (domain.Tally, error)
	GetByVoter(ctx context.Context, itemID, voterID uuid.UUID) (*domain.Vote, error)
}

type attendanceRepo interface {
	Get(ctx context.Context, sessionID, voterID uuid.UUID) (*domain.Attendance, error)
	CountPresent(ctx context.Context, sessionID uuid.UUID) (int, error)
}

type speechRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SpeechRequest, error)
	List(ctx context.Context, filter domain.SpeechFilter) ([]domain.SpeechRequest, error)
}

// Service assembles snapshots from the repositories.
type Service struct {
	sessions   sessionRepo
	control    controlRepo
	documents  documentRepo
	matters    matterRepo
	votes      voteRepo
	attendance attendanceRepo
	speeches   speechRepo
	log        *slog.Logger
}

// Deps groups the repositories the display service reads from.
type Deps struct {
	Sessions   sessionRepo
	Control    controlRepo
	Documents  documentRepo
	Matters    matterRepo
	Votes      voteRepo
	Attendance attendanceRepo
	Speeches   speechRepo
}

// NewService creates a new display service.
func NewService(log *slog.Logger, deps Deps) *Service {
	return &Service{
		sessions:   deps.Sessions,
		control:    deps.Control,
		documents:  deps.Documents,
		matters:    deps.Matters,
		votes:      deps.Votes,
		attendance: deps.Attendance,
		speeches:   deps.Speeches,
		log:        log.With("service", "display"),
	}
}
