package speech

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// Approve admits a request to its queue.
func (s *Service) Approve(ctx context.Context, requestID uuid.UUID) (*domain.SpeechRequest, error) {
	return s.setApproved(ctx, requestID, true)
}

// Reject revokes the approval of a request. The request is kept. A request
// that holds the floor must be ended first.
func (s *Service) Reject(ctx context.Context, requestID uuid.UUID) (*domain.SpeechRequest, error) {
	return s.setApproved(ctx, requestID, false)
}

func (s *Service) setApproved(ctx context.Context, requestID uuid.UUID, approved bool) (*domain.SpeechRequest, error) {
	actor, err := authz.Require(ctx, authz.Admins)
	if err != nil {
		return nil, err
	}
	if err := requireID("request_id", requestID); err != nil {
		return nil, err
	}

	var req *domain.SpeechRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if !approved {
			ctrl, _, err := s.control.Lock(txCtx)
			if err != nil {
				return fmt.Errorf("lock control: %w", err)
			}
			if ctrl.SpeakingRequestID != nil && *ctrl.SpeakingRequestID == requestID {
				return domain.NewConflictError(domain.ReasonSpeaking)
			}
		}
		if err := s.requests.SetApproved(txCtx, requestID, approved); err != nil {
			return fmt.Errorf("set approved: %w", err)
		}
		req, err = s.requests.GetByID(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("get speech request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := domain.AuditActionSpeechReject
	if approved {
		action = domain.AuditActionSpeechApprove
	}
	s.audit.Record(ctx, action, map[string]any{
		"request_id": requestID.String(),
	})

	s.log.InfoContext(ctx, "speech request reviewed",
		slog.String("request_id", requestID.String()),
		slog.Bool("approved", approved),
		slog.String("actor_id", actor.ID.String()),
	)

	return req, nil
}

// Delete removes a request that has not been given the floor.
func (s *Service) Delete(ctx context.Context, requestID uuid.UUID) error {
	actor, err := authz.Require(ctx, authz.Admins)
	if err != nil {
		return err
	}
	if err := requireID("request_id", requestID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.GetByID(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("get speech request: %w", err)
		}
		if req.StartedAt != nil || req.IsSpeaking || req.HasSpoken {
			return domain.NewConflictError(domain.ReasonSpeechStarted)
		}
		if err := s.requests.Delete(txCtx, requestID); err != nil {
			return fmt.Errorf("delete speech request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditActionSpeechDelete, map[string]any{
		"request_id": requestID.String(),
	})

	s.log.InfoContext(ctx, "speech request deleted",
		slog.String("request_id", requestID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}

// Reorder sets the queue rank of a request.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) (*domain.SpeechRequest, error) {
	actor, err := authz.Require(ctx, authz.Admins)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requests.SetOrderIndex(ctx, input.RequestID, input.OrderIndex); err != nil {
		return nil, fmt.Errorf("set order index: %w", err)
	}
	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get speech request: %w", err)
	}

	s.audit.Record(ctx, domain.AuditActionSpeechReorder, map[string]any{
		"request_id":  input.RequestID.String(),
		"order_index": input.OrderIndex,
	})

	s.log.InfoContext(ctx, "speech request reordered",
		slog.String("request_id", input.RequestID.String()),
		slog.Int("order_index", input.OrderIndex),
		slog.String("actor_id", actor.ID.String()),
	)

	return req, nil
}
