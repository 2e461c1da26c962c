package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// EndVoting closes the vote on the item, counts the ballots and stores the
// outcome: approved when YES outnumbers NO.
func (s *Service) EndVoting(ctx context.Context, input ItemInput) (*domain.VoteResult, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vi := input.Item()
	var result *domain.VoteResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, now, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}
		if !ctrl.IsVoting(vi) {
			return domain.NewConflictError(domain.ReasonNotInVoting)
		}

		ctrl.VotingDocumentID = nil
		ctrl.VotingMatterID = nil
		if err := s.control.Save(txCtx, ctrl); err != nil {
			return fmt.Errorf("save control: %w", err)
		}

		tally, err := s.votes.Tally(txCtx, vi.ID)
		if err != nil {
			return fmt.Errorf("tally: %w", err)
		}
		approved := tally.Approved()

		switch vi.Type {
		case domain.ItemTypeDocument:
			err = s.documents.MarkVotingEnded(txCtx, vi.ID, domain.ApprovalFor(approved), now)
		case domain.ItemTypeMatter:
			status := domain.MatterStatusRejected
			if approved {
				status = domain.MatterStatusApproved
			}
			err = s.matters.MarkVotingEnded(txCtx, vi.ID, status, now)
		}
		if err != nil {
			return fmt.Errorf("mark voting ended: %w", err)
		}

		it, err := s.loadItem(txCtx, vi)
		if err != nil {
			return fmt.Errorf("load item: %w", err)
		}

		result = &domain.VoteResult{
			Item:     vi,
			Title:    it.title,
			Tally:    tally,
			Approved: approved,
			EndedAt:  &now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := itemDetails(vi)
	details["yes"] = result.Tally.Yes
	details["no"] = result.Tally.No
	details["abstention"] = result.Tally.Abstention
	details["approved"] = result.Approved
	s.audit.Record(ctx, domain.AuditActionVotingEnd, details)

	s.log.InfoContext(ctx, "voting ended",
		slog.String("item_type", vi.Type.String()),
		slog.String("item_id", vi.ID.String()),
		slog.Bool("approved", result.Approved),
		slog.Int("yes", result.Tally.Yes),
		slog.Int("no", result.Tally.No),
		slog.String("actor_id", actor.ID.String()),
	)

	return result, nil
}
