package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// StartVoting opens the vote on a document or matter. Only one item may be
// in voting at a time across the council.
func (s *Service) StartVoting(ctx context.Context, input ItemInput) (*domain.ActiveVote, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vi := input.Item()
	var active *domain.ActiveVote
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, now, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}
		if _, ok := ctrl.VotingItem(); ok {
			return domain.NewConflictError(domain.ReasonVotingInProgress)
		}

		it, err := s.loadItem(txCtx, vi)
		if err != nil {
			return fmt.Errorf("load item: %w", err)
		}
		if vi.Type == domain.ItemTypeDocument {
			sess, err := s.sessions.GetByID(txCtx, it.sessionID)
			if err != nil {
				return fmt.Errorf("get session: %w", err)
			}
			if sess.IsClosed() {
				return domain.NewConflictError(domain.ReasonSessionClosed)
			}
		}

		switch vi.Type {
		case domain.ItemTypeDocument:
			ctrl.VotingDocumentID = &vi.ID
			err = s.documents.MarkVotingStarted(txCtx, vi.ID, now)
		case domain.ItemTypeMatter:
			ctrl.VotingMatterID = &vi.ID
			err = s.matters.MarkVotingStarted(txCtx, vi.ID, now)
		}
		if err != nil {
			return fmt.Errorf("mark voting started: %w", err)
		}
		if err := s.control.Save(txCtx, ctrl); err != nil {
			return fmt.Errorf("save control: %w", err)
		}

		tally, err := s.votes.Tally(txCtx, vi.ID)
		if err != nil {
			return fmt.Errorf("tally: %w", err)
		}

		active = &domain.ActiveVote{
			Item:      vi,
			Title:     it.title,
			StartedAt: &now,
			Tally:     tally,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionVotingStart, itemDetails(vi))

	s.log.InfoContext(ctx, "voting started",
		slog.String("item_type", vi.Type.String()),
		slog.String("item_id", vi.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return active, nil
}
