package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// DeleteSession removes a session that has not started yet, together with
// its documents and speech requests.
func (s *Service) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	actor, err := authz.Require(ctx, authz.Admins)
	if err != nil {
		return err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return err
	}

	var number string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sess, err := s.sessions.GetByIDForUpdate(txCtx, sessionID)
		if err != nil {
			return fmt.Errorf("lock session: %w", err)
		}
		if sess.Status != domain.SessionStatusScheduled {
			return domain.NewConflictError(domain.ReasonSessionNotScheduled)
		}
		number = sess.Number.String()

		if err := s.sessions.Delete(txCtx, sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditActionSessionDelete, map[string]any{
		"session_id": sessionID.String(),
		"number":     number,
	})

	s.log.InfoContext(ctx, "session deleted",
		slog.String("session_id", sessionID.String()),
		slog.String("number", number),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}
