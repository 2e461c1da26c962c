package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
	"golang.org/x/sync/errgroup"
)

// CouncilorStatus returns the calling voter's view of the current session.
// Returns domain.ErrNotFound when no session is open.
func (s *Service) CouncilorStatus(ctx context.Context) (*domain.CouncilorStatus, error) {
	actor, err := authz.Require(ctx, authz.Voters)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current session: %w", err)
	}

	status := &domain.CouncilorStatus{SessionID: sess.ID, SessionStatus: sess.Status}
	var present int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.attendance.Get(gctx, sess.ID, actor.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get attendance: %w", err)
		}
		status.IsPresent, status.ArrivedAt = a.IsPresent, a.ArrivedAt
		return nil
	})
	g.Go(func() error {
		ctrl, _, err := s.control.Get(gctx)
		if err != nil {
			return fmt.Errorf("get control: %w", err)
		}
		item, ok := ctrl.VotingItem()
		if !ok {
			return nil
		}
		vote, err := s.activeVote(gctx, sess.ID, item)
		if err != nil {
			return ignoreNotFound(err, "get active vote")
		}
		if vote == nil {
			return nil
		}
		status.ActiveVote = vote

		mine, err := s.votes.GetByVoter(gctx, item.ID, actor.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get own vote: %w", err)
		}
		status.MyVote = &mine.VoteType
		return nil
	})
	g.Go(func() error {
		own, err := s.speeches.List(gctx, domain.SpeechFilter{SessionID: sess.ID, UserID: &actor.ID})
		if err != nil {
			return fmt.Errorf("list own speech requests: %w", err)
		}
		status.SpeechRequests = own
		return nil
	})
	g.Go(func() error {
		cf := domain.SpeechTypeConsideracoesFinais
		queue, err := s.speeches.List(gctx, domain.SpeechFilter{SessionID: sess.ID, Type: &cf, OnlyApproved: true})
		if err != nil {
			return fmt.Errorf("list speech queue: %w", err)
		}
		status.QueuePosition = domain.QueuePosition(queue, actor.ID)
		return nil
	})
	g.Go(func() error {
		var err error
		present, err = s.attendance.CountPresent(gctx, sess.ID)
		if err != nil {
			return fmt.Errorf("count present: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	status.Quorum = domain.Quorum{PresentCount: present, Required: sess.Quorum}
	if status.ActiveVote != nil {
		status.ActiveVote.Eligible = present
	}
	return status, nil
}
