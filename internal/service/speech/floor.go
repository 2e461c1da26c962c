package speech

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// StartSpeech gives the floor to an approved request that has not spoken
// yet, in any queue order. Whoever was speaking is ended first.
func (s *Service) StartSpeech(ctx context.Context, input StartSpeechInput) (*domain.SpeechRequest, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.validate(s.maxMinutes); err != nil {
		return nil, err
	}
	limit := input.TimeLimitMinutes
	if limit == 0 {
		limit = DefaultTimeLimit
	}

	var (
		started  *domain.SpeechRequest
		previous *uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, now, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}

		req, err := s.requests.GetByID(txCtx, input.RequestID)
		if err != nil {
			return fmt.Errorf("get speech request: %w", err)
		}
		if !req.IsApproved {
			return domain.NewConflictError(domain.ReasonSpeechNotApproved)
		}
		if req.HasSpoken {
			return domain.NewConflictError(domain.ReasonSpeechAlreadyDone)
		}
		sess, err := s.sessions.GetByID(txCtx, req.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if sess.IsClosed() {
			return domain.NewConflictError(domain.ReasonSessionClosed)
		}

		if ctrl.SpeakingRequestID != nil && *ctrl.SpeakingRequestID != input.RequestID {
			previous = ctrl.SpeakingRequestID
			if err := s.requests.MarkEnded(txCtx, *previous, now); err != nil {
				return fmt.Errorf("end previous speech: %w", err)
			}
		}

		id := input.RequestID
		ctrl.SpeakingRequestID = &id
		if err := s.control.Save(txCtx, ctrl); err != nil {
			return fmt.Errorf("save control: %w", err)
		}
		if err := s.requests.MarkStarted(txCtx, id, now, limit); err != nil {
			return fmt.Errorf("mark started: %w", err)
		}

		started, err = s.requests.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("reload speech request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := map[string]any{
		"request_id": input.RequestID.String(),
		"time_limit": limit,
	}
	if previous != nil {
		details["previous_id"] = previous.String()
	}
	s.audit.Record(ctx, domain.AuditActionSpeechStart, details)

	s.log.InfoContext(ctx, "speech started",
		slog.String("request_id", input.RequestID.String()),
		slog.Int("time_limit", limit),
		slog.String("actor_id", actor.ID.String()),
	)

	return started, nil
}

// EndSpeech marks a request as spoken and frees the floor if it held it.
func (s *Service) EndSpeech(ctx context.Context, requestID uuid.UUID) (*domain.SpeechRequest, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := requireID("request_id", requestID); err != nil {
		return nil, err
	}

	var ended *domain.SpeechRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, now, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}

		if ctrl.SpeakingRequestID != nil && *ctrl.SpeakingRequestID == requestID {
			ctrl.SpeakingRequestID = nil
			if err := s.control.Save(txCtx, ctrl); err != nil {
				return fmt.Errorf("save control: %w", err)
			}
		}
		if err := s.requests.MarkEnded(txCtx, requestID, now); err != nil {
			return fmt.Errorf("mark ended: %w", err)
		}

		ended, err = s.requests.GetByID(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("reload speech request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionSpeechEnd, map[string]any{
		"request_id": requestID.String(),
	})

	s.log.InfoContext(ctx, "speech ended",
		slog.String("request_id", requestID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return ended, nil
}
