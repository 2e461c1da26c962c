package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	ExistsOpen(ctx context.Context) (bool, error)
	MaxNumberSeq(ctx context.Context, year int) (int, error)
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionSummary, error)
	Count(ctx context.Context, filter domain.SessionFilter) (int, error)
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	Update(ctx context.Context, id uuid.UUID, params domain.SessionUpdateParams) (*domain.Session, error)
	SaveState(ctx context.Context, s *domain.Session) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

// Config holds the session limits taken from the council configuration.
type Config struct {
	DefaultQuorum int
	MaxTimer      time.Duration
	PageLimit     int
}

// Service runs the session lifecycle: creation, phases, attendance and
// speech-request windows and the session timer.
type Service struct {
	sessions sessionRepo
	control  controlRepo
	audit    auditRecorder
	tx       txManager
	policy   TransitionPolicy
	cfg      Config
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new session service. A nil policy falls back to
// PermissivePolicy.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	control controlRepo,
	audit auditRecorder,
	tx txManager,
	policy TransitionPolicy,
	cfg Config,
) *Service {
	if policy == nil {
		policy = PermissivePolicy{}
	}
	if cfg.DefaultQuorum <= 0 {
		cfg.DefaultQuorum = domain.DefaultQuorum
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 100
	}
	if cfg.MaxTimer <= 0 {
		cfg.MaxTimer = 4 * time.Hour
	}
	return &Service{
		sessions: sessions,
		control:  control,
		audit:    audit,
		tx:       tx,
		policy:   policy,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "session"),
	}
}

// SessionList is one page of sessions plus the total match count.
type SessionList struct {
	Items []domain.SessionSummary
	Total int
}
