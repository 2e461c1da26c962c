package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// UpdateSession changes the descriptive fields and quorum of a session.
func (s *Service) UpdateSession(ctx context.Context, input UpdateSessionInput) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.SessionUpdateParams{
		ScheduledAt: input.ScheduledAt,
		Quorum:      input.Quorum,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		params.Description = &desc
	}

	updated, err := s.sessions.Update(ctx, input.SessionID, params)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.audit.Record(ctx, domain.AuditActionSessionUpdate, map[string]any{
		"session_id": updated.ID.String(),
	})

	s.log.InfoContext(ctx, "session updated",
		slog.String("session_id", updated.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return updated, nil
}
