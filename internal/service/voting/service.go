package voting

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

type controlRepo interface {
	Lock(ctx context.Context) (domain.Control, time.Time, error)
	LockShared(ctx context.Context) (domain.Control, error)
	Save(ctx context.Context, c domain.Control) error
}

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	MarkVotingStarted(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkVotingEnded(ctx context.Context, id uuid.UUID, approval domain.Approval, at time.Time) error
}

type matterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	MarkVotingStarted(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkVotingEnded(ctx context.Context, id uuid.UUID, status domain.MatterStatus, at time.Time) error
}

type voteRepo interface {
	Insert(ctx context.Context, v *domain.Vote) (*domain.Vote, error)
	Tally(ctx context.Context, itemID uuid.UUID) (domain.Tally, error)
}

type auditRecorder interface {
	Record(ctx context.Context, action domain.AuditAction, details map[string]any)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service opens and closes votes on documents and matters and records
// ballots. The single active vote lives on the council control record.
type Service struct {
	control   controlRepo
	sessions  sessionRepo
	documents documentRepo
	matters   matterRepo
	votes     voteRepo
	audit     auditRecorder
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new voting service.
func NewService(
	log *slog.Logger,
	control controlRepo,
	sessions sessionRepo,
	documents documentRepo,
	matters matterRepo,
	votes voteRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		control:   control,
		sessions:  sessions,
		documents: documents,
		matters:   matters,
		votes:     votes,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "voting"),
	}
}

// item is the votable entity behind a VotingItem, loaded from its repo.
// sessionID is set for documents only; matters are not tied to a sitting.
type item struct {
	title     string
	sessionID uuid.UUID
	startedAt *time.Time
	endedAt   *time.Time
	resolved  bool
	approved  bool
}

func (s *Service) loadItem(ctx context.Context, vi domain.VotingItem) (item, error) {
	switch vi.Type {
	case domain.ItemTypeDocument:
		d, err := s.documents.GetByID(ctx, vi.ID)
		if err != nil {
			return item{}, err
		}
		return item{
			title:     d.Title,
			sessionID: d.SessionID,
			startedAt: d.VotingStartedAt,
			endedAt:   d.VotingEndedAt,
			resolved:  d.Approval != domain.ApprovalUndecided,
			approved:  d.Approval == domain.ApprovalApproved,
		}, nil
	case domain.ItemTypeMatter:
		m, err := s.matters.GetByID(ctx, vi.ID)
		if err != nil {
			return item{}, err
		}
		return item{
			title:     m.Title,
			startedAt: m.VotingStartedAt,
			endedAt:   m.VotingEndedAt,
			resolved:  m.Status == domain.MatterStatusApproved || m.Status == domain.MatterStatusRejected,
			approved:  m.Status == domain.MatterStatusApproved,
		}, nil
	}
	return item{}, domain.NewValidationError("item_type", "unknown item type")
}

func itemDetails(vi domain.VotingItem) map[string]any {
	return map[string]any{
		"item_type": vi.Type.String(),
		"item_id":   vi.ID.String(),
	}
}
