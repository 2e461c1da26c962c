package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// CreateSession opens a new SCHEDULED session numbered after the highest
// number of the current year. It fails with a ConflictError while any
// other session is not CLOSED.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	quorum := s.cfg.DefaultQuorum
	if input.Quorum != nil {
		quorum = *input.Quorum
	}
	scheduledAt := now
	if input.ScheduledAt != nil {
		scheduledAt = *input.ScheduledAt
	}

	var created *domain.Session
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		open, err := s.sessions.ExistsOpen(txCtx)
		if err != nil {
			return fmt.Errorf("check open session: %w", err)
		}
		if open {
			return domain.NewConflictError(domain.ReasonSessionAlreadyActive)
		}

		year := now.Year()
		seq, err := s.sessions.MaxNumberSeq(txCtx, year)
		if err != nil {
			return fmt.Errorf("max session number: %w", err)
		}
		number := domain.SessionNumber{Seq: seq, Year: year}.Next(year)

		title := domain.DefaultSessionTitle(number)
		if t := trimOrNil(input.Title); t != nil {
			title = *t
		}

		created, err = s.sessions.Create(txCtx, &domain.Session{
			Number:      number,
			Title:       title,
			Description: trimOrNil(input.Description),
			ScheduledAt: scheduledAt,
			Status:      domain.SessionStatusScheduled,
			Quorum:      quorum,
			CreatedBy:   actor.ID,
		})
		if err != nil {
			return fmt.Errorf("create session: %w", mapOpenConflict(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionSessionCreate, map[string]any{
		"session_id": created.ID.String(),
		"number":     created.Number.String(),
	})

	s.log.InfoContext(ctx, "session created",
		slog.String("session_id", created.ID.String()),
		slog.String("number", created.Number.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return created, nil
}

// mapOpenConflict turns a unique violation on the single-open-session index
// into the conflict callers expect.
func mapOpenConflict(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewConflictError(domain.ReasonSessionAlreadyActive)
	}
	return err
}
