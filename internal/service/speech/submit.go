package speech

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// Submit files a speech request while the session accepts them. It is
// appended to the end of its queue and waits for approval.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.SpeechRequest, error) {
	actor, err := authz.Require(ctx, authz.Members)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := requester(actor, input)
	if err != nil {
		return nil, err
	}
	req.SessionID = input.SessionID
	req.Subject = strings.TrimSpace(input.Subject)

	var created *domain.SpeechRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The session row lock serialises order index allocation per session.
		sess, err := s.sessions.GetByIDForUpdate(txCtx, input.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if !sess.IsSpeechRequestsOpen {
			return domain.NewConflictError(domain.ReasonSpeechRequestsClosed)
		}

		req.OrderIndex, err = s.requests.NextOrderIndex(txCtx, input.SessionID, req.Type)
		if err != nil {
			return fmt.Errorf("next order index: %w", err)
		}

		created, err = s.requests.Create(txCtx, req)
		if err != nil {
			return fmt.Errorf("create speech request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionSpeechSubmit, map[string]any{
		"request_id": created.ID.String(),
		"session_id": created.SessionID.String(),
		"type":       created.Type.String(),
		"citizen":    created.IsCitizen(),
	})

	s.log.InfoContext(ctx, "speech request submitted",
		slog.String("request_id", created.ID.String()),
		slog.String("session_id", created.SessionID.String()),
		slog.String("type", created.Type.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return created, nil
}

// requester decides who the request is for and its type from the caller's
// role.
func requester(actor domain.Actor, input SubmitInput) (*domain.SpeechRequest, error) {
	citizen := trimOrNil(input.CitizenName)

	if actor.Role != domain.RoleAdmin {
		if input.UserID != nil || citizen != nil {
			return nil, domain.NewValidationError("user_id", "only the clerk may file on behalf of others")
		}
		if input.Type != nil && *input.Type != domain.SpeechTypeConsideracoesFinais {
			return nil, domain.NewValidationError("type", "councilors may only request CONSIDERACOES_FINAIS")
		}
		id := actor.ID
		return &domain.SpeechRequest{UserID: &id, Type: domain.SpeechTypeConsideracoesFinais}, nil
	}

	switch {
	case input.UserID != nil && citizen != nil:
		return nil, domain.NewValidationError("user_id", "give either user_id or citizen_name")
	case input.UserID != nil:
		typ := domain.SpeechTypeConsideracoesFinais
		if input.Type != nil {
			typ = *input.Type
		}
		id := *input.UserID
		return &domain.SpeechRequest{UserID: &id, Type: typ}, nil
	case citizen != nil:
		if input.Type != nil && *input.Type != domain.SpeechTypeTribunaLive {
			return nil, domain.NewValidationError("type", "citizens may only request TRIBUNA_LIVE")
		}
		return &domain.SpeechRequest{
			CitizenName:       citizen,
			CitizenProfession: trimOrNil(input.CitizenProfession),
			Type:              domain.SpeechTypeTribunaLive,
		}, nil
	}
	return nil, domain.NewValidationError("user_id", "user_id or citizen_name required")
}
