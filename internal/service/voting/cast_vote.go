package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// CastVote records the caller's ballot on the item currently in voting.
// A ballot is final: a second one from the same voter is a conflict.
func (s *Service) CastVote(ctx context.Context, input CastVoteInput) (*domain.Vote, error) {
	actor, err := authz.Require(ctx, authz.Voters)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vi := input.Item()
	var vote *domain.Vote
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, err := s.control.LockShared(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}
		if !ctrl.IsVoting(vi) {
			return domain.NewConflictError(domain.ReasonNotInVoting)
		}

		vote, err = s.votes.Insert(txCtx, &domain.Vote{
			ItemType: vi.Type,
			ItemID:   vi.ID,
			VoterID:  actor.ID,
			VoteType: input.VoteType,
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.NewConflictError(domain.ReasonAlreadyVoted)
		}
		if err != nil {
			return fmt.Errorf("insert vote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := itemDetails(vi)
	details["vote_type"] = input.VoteType.String()
	s.audit.Record(ctx, domain.AuditActionVoteCast, details)

	s.log.InfoContext(ctx, "vote cast",
		slog.String("item_id", vi.ID.String()),
		slog.String("voter_id", actor.ID.String()),
		slog.String("vote_type", input.VoteType.String()),
	)

	return vote, nil
}
