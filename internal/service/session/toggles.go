package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// SetAttendanceOpen opens or closes presence registration. The window is
// independent of the session phase.
func (s *Service) SetAttendanceOpen(ctx context.Context, sessionID uuid.UUID, open bool) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	saved, err := s.update(ctx, sessionID, func(sess *domain.Session, now time.Time) error {
		sess.IsAttendanceOpen = open
		if open {
			sess.AttendanceStartedAt = &now
			sess.AttendanceEndedAt = nil
		} else {
			sess.AttendanceEndedAt = &now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionAttendanceToggle, map[string]any{
		"session_id": saved.ID.String(),
		"open":       open,
	})

	s.log.InfoContext(ctx, "attendance toggled",
		slog.String("session_id", saved.ID.String()),
		slog.Bool("open", open),
		slog.String("actor_id", actor.ID.String()),
	)

	return saved, nil
}

// SetSpeechRequestsOpen opens or closes the submission of speech requests.
func (s *Service) SetSpeechRequestsOpen(ctx context.Context, sessionID uuid.UUID, open bool) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	saved, err := s.update(ctx, sessionID, func(sess *domain.Session, _ time.Time) error {
		sess.IsSpeechRequestsOpen = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionSpeechToggle, map[string]any{
		"session_id": saved.ID.String(),
		"open":       open,
	})

	s.log.InfoContext(ctx, "speech requests toggled",
		slog.String("session_id", saved.ID.String()),
		slog.Bool("open", open),
		slog.String("actor_id", actor.ID.String()),
	)

	return saved, nil
}

// StartTimer (re)starts the session countdown. Remaining time is derived
// from the stored start and duration on every read.
func (s *Service) StartTimer(ctx context.Context, input StartTimerInput) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.validate(s.cfg.MaxTimer); err != nil {
		return nil, err
	}

	duration := time.Duration(input.DurationSeconds) * time.Second
	saved, err := s.update(ctx, input.SessionID, func(sess *domain.Session, now time.Time) error {
		sess.Timer = domain.SessionTimer{
			StartedAt: &now,
			Duration:  duration,
			Phase:     trimOrNil(input.Phase),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionTimerStart, map[string]any{
		"session_id":       saved.ID.String(),
		"duration_seconds": input.DurationSeconds,
	})

	s.log.InfoContext(ctx, "timer started",
		slog.String("session_id", saved.ID.String()),
		slog.Int("duration_seconds", input.DurationSeconds),
		slog.String("actor_id", actor.ID.String()),
	)

	return saved, nil
}

// StopTimer clears the session countdown.
func (s *Service) StopTimer(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	saved, err := s.update(ctx, sessionID, func(sess *domain.Session, _ time.Time) error {
		sess.Timer = domain.SessionTimer{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionTimerStop, map[string]any{
		"session_id": saved.ID.String(),
	})

	s.log.InfoContext(ctx, "timer stopped",
		slog.String("session_id", saved.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return saved, nil
}
