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

// CreateDocument adds a document to a session. Without an explicit order
// index it goes after the last document of the session.
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Document
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.sessions.GetByID(txCtx, input.SessionID); err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		orderIndex := 0
		if input.OrderIndex != nil {
			orderIndex = *input.OrderIndex
		} else {
			next, err := s.documents.NextOrderIndex(txCtx, input.SessionID)
			if err != nil {
				return fmt.Errorf("next order index: %w", err)
			}
			orderIndex = next
		}

		var err error
		created, err = s.documents.Create(txCtx, &domain.Document{
			SessionID:   input.SessionID,
			Title:       strings.TrimSpace(input.Title),
			Type:        strings.TrimSpace(input.Type),
			Phase:       strings.TrimSpace(input.Phase),
			Author:      trimOrNil(input.Author),
			Description: trimOrNil(input.Description),
			OrderIndex:  orderIndex,
			Approval:    domain.ApprovalUndecided,
			CreatedBy:   actor.ID,
		})
		if err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionDocumentCreate, map[string]any{
		"document_id": created.ID.String(),
		"session_id":  created.SessionID.String(),
		"title":       created.Title,
	})

	s.log.InfoContext(ctx, "document created",
		slog.String("document_id", created.ID.String()),
		slog.String("session_id", created.SessionID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return created, nil
}

// UpdateDocument changes the descriptive fields of a document.
func (s *Service) UpdateDocument(ctx context.Context, input UpdateDocumentInput) (*domain.Document, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.documents.Update(ctx, input.DocumentID, domain.DocumentUpdateParams{
		Title:       trimPtr(input.Title),
		Type:        trimPtr(input.Type),
		Phase:       trimPtr(input.Phase),
		Author:      trimPtr(input.Author),
		Description: trimPtr(input.Description),
		OrderIndex:  input.OrderIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	s.audit.Record(ctx, domain.AuditActionDocumentUpdate, map[string]any{
		"document_id": updated.ID.String(),
	})

	s.log.InfoContext(ctx, "document updated",
		slog.String("document_id", updated.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return updated, nil
}

// DeleteDocument removes a document that is not in voting and has never
// received a ballot. A reading pointer to it is cleared.
func (s *Service) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return err
	}
	if err := requireID("document_id", documentID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, _, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}
		if sameID(ctrl.VotingDocumentID, documentID) {
			return domain.NewConflictError(domain.ReasonItemInVoting)
		}

		hasVotes, err := s.votes.ExistsForItem(txCtx, documentID)
		if err != nil {
			return fmt.Errorf("check votes: %w", err)
		}
		if hasVotes {
			return domain.NewConflictError(domain.ReasonDocumentHasVotes)
		}

		if sameID(ctrl.ReadingDocumentID, documentID) {
			ctrl.ReadingDocumentID = nil
			if err := s.control.Save(txCtx, ctrl); err != nil {
				return fmt.Errorf("save control: %w", err)
			}
		}

		if err := s.documents.Delete(txCtx, documentID); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditActionDocumentDelete, map[string]any{
		"document_id": documentID.String(),
	})

	s.log.InfoContext(ctx, "document deleted",
		slog.String("document_id", documentID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}

// GetDocument returns a document with its reading and voting flags.
func (s *Service) GetDocument(ctx context.Context, documentID uuid.UUID) (*domain.Document, error) {
	if _, err := authz.Require(ctx, authz.Members); err != nil {
		return nil, err
	}
	if err := requireID("document_id", documentID); err != nil {
		return nil, err
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns the documents of a session in order, optionally
// only those on the agenda.
func (s *Service) ListDocuments(ctx context.Context, sessionID uuid.UUID, onlyAgenda bool) ([]domain.Document, error) {
	if _, err := authz.Require(ctx, authz.Members); err != nil {
		return nil, err
	}
	if err := requireID("session_id", sessionID); err != nil {
		return nil, err
	}

	docs, err := s.documents.List(ctx, domain.DocumentFilter{SessionID: sessionID, OnlyAgenda: onlyAgenda})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
