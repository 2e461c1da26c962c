package speech

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

type speechRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SpeechRequest, error)
	List(ctx context.Context, filter domain.SpeechFilter) ([]domain.SpeechRequest, error)
	NextOrderIndex(ctx context.Context, sessionID uuid.UUID, speechType domain.SpeechType) (int, error)
	Create(ctx context.Context, req *domain.SpeechRequest) (*domain.SpeechRequest, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	SetOrderIndex(ctx context.Context, id uuid.UUID, orderIndex int) error
	MarkStarted(ctx context.Context, id uuid.UUID, at time.Time, timeLimitMinutes int) error
	MarkEnded(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

type controlRepo interface {
	Lock(ctx context.Context) (domain.Control, time.Time, error)
	Save(ctx context.Context, c domain.Control) error
}

type auditRecorder interface {
	Record(ctx context.Context, action domain.AuditAction, details map[string]any)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultTimeLimit is the speaking time in minutes used when a speech is
// started without an explicit limit.
const DefaultTimeLimit = 5

// Service manages speech requests: submission, approval, queue order and
// the single active speaker.
type Service struct {
	requests   speechRepo
	sessions   sessionRepo
	control    controlRepo
	audit      auditRecorder
	tx         txManager
	maxMinutes int
	log        *slog.Logger
}

// NewService creates a new speech service. maxMinutes caps the time limit
// of a single speech.
func NewService(
	log *slog.Logger,
	requests speechRepo,
	sessions sessionRepo,
	control controlRepo,
	audit auditRecorder,
	tx txManager,
	maxMinutes int,
) *Service {
	if maxMinutes <= 0 {
		maxMinutes = 60
	}
	return &Service{
		requests:   requests,
		sessions:   sessions,
		control:    control,
		audit:      audit,
		tx:         tx,
		maxMinutes: maxMinutes,
		log:        log.With("service", "speech"),
	}
}
