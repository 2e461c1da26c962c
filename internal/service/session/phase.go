package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// SetPhase moves the session to input.Status if the transition policy
// allows it.
func (s *Service) SetPhase(ctx context.Context, input SetPhaseInput) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var from domain.SessionStatus
	saved, err := s.update(ctx, input.SessionID, func(sess *domain.Session, now time.Time) error {
		from = sess.Status
		if err := s.policy.Allow(from, input.Status); err != nil {
			return err
		}
		enterPhase(sess, input.Status, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionSessionPhase, map[string]any{
		"session_id": saved.ID.String(),
		"from":       from.String(),
		"to":         saved.Status.String(),
	})

	s.log.InfoContext(ctx, "session phase changed",
		slog.String("session_id", saved.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", saved.Status.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return saved, nil
}

// StartSession moves a SCHEDULED session to PEQUENO_EXPEDIENTE and stamps
// its start time.
func (s *Service) StartSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	saved, err := s.update(ctx, sessionID, func(sess *domain.Session, now time.Time) error {
		if sess.Status != domain.SessionStatusScheduled {
			return domain.NewConflictError(domain.ReasonSessionNotScheduled)
		}
		if err := s.policy.Allow(sess.Status, domain.SessionStatusPequenoExpediente); err != nil {
			return err
		}
		enterPhase(sess, domain.SessionStatusPequenoExpediente, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionSessionStart, map[string]any{
		"session_id": saved.ID.String(),
	})

	s.log.InfoContext(ctx, "session started",
		slog.String("session_id", saved.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return saved, nil
}

// CloseSession closes the session, its attendance and speech-request
// windows and clears the timer. It refuses while a document is in voting
// and takes the reading document and the speaker off the panel.
func (s *Service) CloseSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	saved, err := s.update(ctx, sessionID, func(sess *domain.Session, now time.Time) error {
		if err := s.policy.Allow(sess.Status, domain.SessionStatusClosed); err != nil {
			return err
		}
		enterPhase(sess, domain.SessionStatusClosed, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionSessionClose, map[string]any{
		"session_id": saved.ID.String(),
	})

	s.log.InfoContext(ctx, "session closed",
		slog.String("session_id", saved.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return saved, nil
}

// update locks the control record and then the session row, lets apply
// change the session at the database clock and saves the result in one
// transaction. Closing releases the pointers the session held.
func (s *Service) update(
	ctx context.Context,
	id uuid.UUID,
	apply func(sess *domain.Session, now time.Time) error,
) (*domain.Session, error) {
	var saved *domain.Session
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, now, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}
		sess, err := s.sessions.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock session: %w", err)
		}
		wasClosed := sess.IsClosed()
		if err := apply(sess, now); err != nil {
			return err
		}
		if sess.IsClosed() && !wasClosed {
			if err := s.releaseControl(txCtx, ctrl); err != nil {
				return err
			}
		}
		saved, err = s.sessions.SaveState(txCtx, sess)
		if err != nil {
			return fmt.Errorf("save session: %w", mapOpenConflict(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// releaseControl clears the reading document and the speaker when a session
// closes. Only one session is open at a time, so any pointer still set
// belongs to it. Matter votes are not tied to a sitting and stay.
func (s *Service) releaseControl(ctx context.Context, ctrl domain.Control) error {
	if ctrl.VotingDocumentID != nil {
		return domain.NewConflictError(domain.ReasonVotingInProgress)
	}
	if ctrl.ReadingDocumentID == nil && ctrl.SpeakingRequestID == nil {
		return nil
	}
	ctrl.ReadingDocumentID = nil
	ctrl.SpeakingRequestID = nil
	if err := s.control.Save(ctx, ctrl); err != nil {
		return fmt.Errorf("save control: %w", err)
	}
	return nil
}

// enterPhase applies the side effects of moving sess to status at now.
func enterPhase(sess *domain.Session, status domain.SessionStatus, now time.Time) {
	from := sess.Status
	sess.Status = status

	switch {
	case status == domain.SessionStatusClosed:
		if from != domain.SessionStatusClosed || sess.ClosedAt == nil {
			sess.ClosedAt = &now
		}
		if sess.IsAttendanceOpen {
			sess.IsAttendanceOpen = false
			sess.AttendanceEndedAt = &now
		}
		sess.IsSpeechRequestsOpen = false
		sess.Timer = domain.SessionTimer{}
	case from == domain.SessionStatusClosed:
		sess.ClosedAt = nil
	}

	if status != domain.SessionStatusScheduled && status != domain.SessionStatusClosed && sess.StartedAt == nil {
		sess.StartedAt = &now
	}
}
