package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
	"golang.org/x/sync/errgroup"
)

const defaultPageSize = 20

// GetSession returns a session by ID.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	if _, err := authz.Require(ctx, authz.Members); err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// ListSessions returns one page of sessions, newest number first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) (*SessionList, error) {
	if _, err := authz.Require(ctx, authz.Members); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	limit = min(limit, s.cfg.PageLimit)

	filter := domain.SessionFilter{
		Status: input.Status,
		Year:   input.Year,
		Limit:  limit,
		Offset: input.Offset,
	}

	var (
		items []domain.SessionSummary
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.sessions.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.sessions.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SessionList{Items: items, Total: total}, nil
}
