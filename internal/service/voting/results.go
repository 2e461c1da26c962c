package voting

import (
	"context"
	"fmt"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// GetTally recounts the ballots cast on an item.
func (s *Service) GetTally(ctx context.Context, input ItemInput) (domain.Tally, error) {
	if _, err := authz.Require(ctx, authz.Members); err != nil {
		return domain.Tally{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Tally{}, err
	}

	if _, err := s.loadItem(ctx, input.Item()); err != nil {
		return domain.Tally{}, fmt.Errorf("load item: %w", err)
	}
	tally, err := s.votes.Tally(ctx, input.ItemID)
	if err != nil {
		return domain.Tally{}, fmt.Errorf("tally: %w", err)
	}
	return tally, nil
}

// GetResult returns the stored outcome and recounted tally of an item whose
// vote has ended. Viewing a result is audited.
func (s *Service) GetResult(ctx context.Context, input ItemInput) (*domain.VoteResult, error) {
	if _, err := authz.Require(ctx, authz.Operators); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vi := input.Item()
	it, err := s.loadItem(ctx, vi)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if !it.resolved {
		return nil, domain.NewConflictError(domain.ReasonNotResolved)
	}

	tally, err := s.votes.Tally(ctx, vi.ID)
	if err != nil {
		return nil, fmt.Errorf("tally: %w", err)
	}

	s.audit.Record(ctx, domain.AuditActionResultView, itemDetails(vi))

	return &domain.VoteResult{
		Item:     vi,
		Title:    it.title,
		Tally:    tally,
		Approved: it.approved,
		EndedAt:  it.endedAt,
	}, nil
}
