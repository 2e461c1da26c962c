package speech

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// ListQueue returns the approved requests of a session split by type. It is
// public.
func (s *Service) ListQueue(ctx context.Context, sessionID uuid.UUID) (*domain.SpeechQueue, error) {
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	approved, err := s.requests.List(ctx, domain.SpeechFilter{SessionID: sessionID, OnlyApproved: true})
	if err != nil {
		return nil, fmt.Errorf("list speech requests: %w", err)
	}

	queue := SplitQueue(approved)
	queue.IsOpen = sess.IsSpeechRequestsOpen
	return &queue, nil
}

// ListRequests returns every request of a session, approved or not.
func (s *Service) ListRequests(ctx context.Context, sessionID uuid.UUID) ([]domain.SpeechRequest, error) {
	if _, err := authz.Require(ctx, authz.Operators); err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	list, err := s.requests.List(ctx, domain.SpeechFilter{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("list speech requests: %w", err)
	}
	return list, nil
}

// QueuePosition returns the caller's 1-based rank in the approved queue of
// the given type, or 0 when the caller has no pending approved request.
func (s *Service) QueuePosition(ctx context.Context, sessionID uuid.UUID, speechType domain.SpeechType) (int, error) {
	actor, err := authz.Require(ctx, authz.Voters)
	if err != nil {
		return 0, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return 0, err
	}
	if !speechType.IsValid() {
		return 0, domain.NewValidationError("type", "must be CONSIDERACOES_FINAIS or TRIBUNA_LIVE")
	}

	queue, err := s.requests.List(ctx, domain.SpeechFilter{
		SessionID:    sessionID,
		Type:         &speechType,
		OnlyApproved: true,
	})
	if err != nil {
		return 0, fmt.Errorf("list speech requests: %w", err)
	}
	return domain.QueuePosition(queue, actor.ID), nil
}

// SplitQueue groups requests ordered by type and order index into the two
// display queues.
func SplitQueue(requests []domain.SpeechRequest) domain.SpeechQueue {
	var q domain.SpeechQueue
	for _, r := range requests {
		switch r.Type {
		case domain.SpeechTypeConsideracoesFinais:
			q.ConsideracoesFinais = append(q.ConsideracoesFinais, r)
		case domain.SpeechTypeTribunaLive:
			q.TribunaLive = append(q.TribunaLive, r)
		}
	}
	return q
}
