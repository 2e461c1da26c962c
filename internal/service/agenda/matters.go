package agenda

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

const defaultMatterPage = 50

// CreateMatter registers a DRAFT matter, attached to input.SessionID when
// given.
func (s *Service) CreateMatter(ctx context.Context, input CreateMatterInput) (*domain.Matter, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Matter
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.matters.Create(txCtx, &domain.Matter{
			Title:       strings.TrimSpace(input.Title),
			Type:        strings.TrimSpace(input.Type),
			Description: trimOrNil(input.Description),
			Status:      domain.MatterStatusDraft,
			CreatedBy:   actor.ID,
		})
		if err != nil {
			return fmt.Errorf("create matter: %w", err)
		}

		if input.SessionID != nil {
			if err := s.matters.Attach(txCtx, *input.SessionID, created.ID); err != nil {
				return fmt.Errorf("attach matter: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := map[string]any{
		"matter_id": created.ID.String(),
		"title":     created.Title,
	}
	if input.SessionID != nil {
		details["session_id"] = input.SessionID.String()
	}
	s.audit.Record(ctx, domain.AuditActionMatterCreate, details)

	s.log.InfoContext(ctx, "matter created",
		slog.String("matter_id", created.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return created, nil
}

// UpdateMatter changes a matter. Its status cannot be changed while it is
// the item in voting.
func (s *Service) UpdateMatter(ctx context.Context, input UpdateMatterInput) (*domain.Matter, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Matter
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Status != nil {
			ctrl, _, err := s.control.Lock(txCtx)
			if err != nil {
				return fmt.Errorf("lock control: %w", err)
			}
			if sameID(ctrl.VotingMatterID, input.MatterID) {
				return domain.NewConflictError(domain.ReasonItemInVoting)
			}
		}

		var err error
		updated, err = s.matters.Update(txCtx, input.MatterID, domain.MatterUpdateParams{
			Title:       trimPtr(input.Title),
			Type:        trimPtr(input.Type),
			Description: trimPtr(input.Description),
			Status:      input.Status,
		})
		if err != nil {
			return fmt.Errorf("update matter: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := map[string]any{"matter_id": updated.ID.String()}
	if input.Status != nil {
		details["status"] = input.Status.String()
	}
	s.audit.Record(ctx, domain.AuditActionMatterUpdate, details)

	s.log.InfoContext(ctx, "matter updated",
		slog.String("matter_id", updated.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return updated, nil
}

// GetMatter returns a matter by ID.
func (s *Service) GetMatter(ctx context.Context, matterID uuid.UUID) (*domain.Matter, error) {
	if _, err := authz.Require(ctx, authz.Members); err != nil {
		return nil, err
	}
	if err := requireID("matter_id", matterID); err != nil {
		return nil, err
	}

	m, err := s.matters.GetByID(ctx, matterID)
	if err != nil {
		return nil, fmt.Errorf("get matter: %w", err)
	}
	return m, nil
}

// ListMatters returns matters, newest first.
func (s *Service) ListMatters(ctx context.Context, input ListMattersInput) ([]domain.Matter, error) {
	if _, err := authz.Require(ctx, authz.Members); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultMatterPage
	}

	list, err := s.matters.List(ctx, domain.MatterFilter{
		SessionID: input.SessionID,
		Status:    input.Status,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list matters: %w", err)
	}
	return list, nil
}

// AttachMatter links a matter to a session. Attaching twice is a no-op.
func (s *Service) AttachMatter(ctx context.Context, sessionID, matterID uuid.UUID) error {
	return s.link(ctx, sessionID, matterID, true)
}

// DetachMatter removes the link between a matter and a session.
func (s *Service) DetachMatter(ctx context.Context, sessionID, matterID uuid.UUID) error {
	return s.link(ctx, sessionID, matterID, false)
}

func (s *Service) link(ctx context.Context, sessionID, matterID uuid.UUID, attach bool) error {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return err
	}
	if err := requireID("matter_id", matterID); err != nil {
		return err
	}

	action, verb := domain.AuditActionMatterDetach, "detach"
	if attach {
		action, verb = domain.AuditActionMatterAttach, "attach"
		if _, err := s.matters.GetByID(ctx, matterID); err != nil {
			return fmt.Errorf("get matter: %w", err)
		}
		err = s.matters.Attach(ctx, sessionID, matterID)
	} else {
		err = s.matters.Detach(ctx, sessionID, matterID)
	}
	if err != nil {
		return fmt.Errorf("%s matter: %w", verb, err)
	}

	s.audit.Record(ctx, action, map[string]any{
		"session_id": sessionID.String(),
		"matter_id":  matterID.String(),
	})

	s.log.InfoContext(ctx, "matter link changed",
		slog.String("session_id", sessionID.String()),
		slog.String("matter_id", matterID.String()),
		slog.Bool("attached", attach),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}
