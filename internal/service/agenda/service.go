package agenda

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	NextOrderIndex(ctx context.Context, sessionID uuid.UUID) (int, error)
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, id uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error)
	SetAgenda(ctx context.Context, id uuid.UUID, onAgenda bool) (*domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type matterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	List(ctx context.Context, filter domain.MatterFilter) ([]domain.Matter, error)
	Create(ctx context.Context, m *domain.Matter) (*domain.Matter, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MatterUpdateParams) (*domain.Matter, error)
	Attach(ctx context.Context, sessionID, matterID uuid.UUID) error
	Detach(ctx context.Context, sessionID, matterID uuid.UUID) error
}

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

type controlRepo interface {
	Lock(ctx context.Context) (domain.Control, time.Time, error)
	Save(ctx context.Context, c domain.Control) error
}

type voteRepo interface {
	ExistsForItem(ctx context.Context, itemID uuid.UUID) (bool, error)
}

type auditRecorder interface {
	Record(ctx context.Context, action domain.AuditAction, details map[string]any)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages documents, matters and the agenda of a session,
// including which document is being read.
type Service struct {
	documents documentRepo
	matters   matterRepo
	sessions  sessionRepo
	control   controlRepo
	votes     voteRepo
	audit     auditRecorder
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new agenda service.
func NewService(
	log *slog.Logger,
	documents documentRepo,
	matters matterRepo,
	sessions sessionRepo,
	control controlRepo,
	votes voteRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		documents: documents,
		matters:   matters,
		sessions:  sessions,
		control:   control,
		votes:     votes,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "agenda"),
	}
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

// trimPtr trims s but keeps an empty string, which clears the field.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func sameID(p *uuid.UUID, id uuid.UUID) bool {
	return p != nil && *p == id
}
