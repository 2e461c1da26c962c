package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/speech"
	"golang.org/x/sync/errgroup"
)

// CurrentSnapshot returns the state of the session that is not closed. When
// every session is closed the snapshot carries no session. It is public.
func (s *Service) CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var (
		sess *domain.Session
		ctrl domain.Control
		snap = &domain.Snapshot{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cur, err := s.sessions.GetCurrent(gctx)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get current session: %w", err)
		}
		sess = cur
		return nil
	})
	g.Go(func() error {
		var err error
		ctrl, snap.GeneratedAt, err = s.control.Get(gctx)
		if err != nil {
			return fmt.Errorf("get control: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if sess == nil {
		return snap, nil
	}
	snap.Session = sess
	now := snap.GeneratedAt

	if remaining := sess.Timer.Remaining(now); remaining > 0 {
		snap.Timer = &domain.TimerView{Phase: sess.Timer.Phase, Remaining: remaining}
	}

	var present int
	g, gctx = errgroup.WithContext(ctx)
	if ctrl.ReadingDocumentID != nil {
		g.Go(func() error {
			doc, err := s.documents.GetByID(gctx, *ctrl.ReadingDocumentID)
			if err != nil {
				return ignoreNotFound(err, "get reading document")
			}
			if doc.SessionID == sess.ID {
				snap.ReadingDoc = doc
			}
			return nil
		})
	}
	if item, ok := ctrl.VotingItem(); ok {
		g.Go(func() error {
			vote, err := s.activeVote(gctx, sess.ID, item)
			if err != nil {
				return ignoreNotFound(err, "get active vote")
			}
			snap.ActiveVote = vote
			return nil
		})
	}
	if ctrl.SpeakingRequestID != nil {
		g.Go(func() error {
			req, err := s.speeches.GetByID(gctx, *ctrl.SpeakingRequestID)
			if err != nil {
				return ignoreNotFound(err, "get active speaker")
			}
			if req.SessionID != sess.ID {
				return nil
			}
			snap.ActiveSpeaker = &domain.SpeakerView{Request: *req, Remaining: req.Remaining(now)}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		present, err = s.attendance.CountPresent(gctx, sess.ID)
		if err != nil {
			return fmt.Errorf("count present: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		approved, err := s.speeches.List(gctx, domain.SpeechFilter{SessionID: sess.ID, OnlyApproved: true})
		if err != nil {
			return fmt.Errorf("list speech queue: %w", err)
		}
		snap.SpeechQueue = speech.SplitQueue(approved)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.SpeechQueue.IsOpen = sess.IsSpeechRequestsOpen
	snap.Quorum = domain.Quorum{PresentCount: present, Required: sess.Quorum}
	if snap.ActiveVote != nil {
		snap.ActiveVote.Eligible = present
	}
	return snap, nil
}

// activeVote loads the title and live tally of the item in voting. A
// document from another session yields no vote.
func (s *Service) activeVote(ctx context.Context, sessionID uuid.UUID, item domain.VotingItem) (*domain.ActiveVote, error) {
	vote := &domain.ActiveVote{Item: item}

	switch item.Type {
	case domain.ItemTypeDocument:
		doc, err := s.documents.GetByID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		if doc.SessionID != sessionID {
			return nil, nil
		}
		vote.Title, vote.StartedAt = doc.Title, doc.VotingStartedAt
	case domain.ItemTypeMatter:
		m, err := s.matters.GetByID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		vote.Title, vote.StartedAt = m.Title, m.VotingStartedAt
	}

	tally, err := s.votes.Tally(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("tally: %w", err)
	}
	vote.Tally = tally
	return vote, nil
}

// ignoreNotFound drops a dangling control pointer from the snapshot instead
// of failing the whole read.
func ignoreNotFound(err error, op string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
