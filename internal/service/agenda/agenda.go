package agenda

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// MoveToAgenda puts a document on the agenda. Its vote outcome is reset to
// UNDECIDED so it can be voted again.
func (s *Service) MoveToAgenda(ctx context.Context, documentID uuid.UUID) (*domain.Document, error) {
	return s.setAgenda(ctx, documentID, true)
}

// RemoveFromAgenda takes a document off the agenda and resets its vote
// outcome the same way MoveToAgenda does.
func (s *Service) RemoveFromAgenda(ctx context.Context, documentID uuid.UUID) (*domain.Document, error) {
	return s.setAgenda(ctx, documentID, false)
}

// setAgenda flips agenda membership and, in the same transaction, stops
// reading or voting on the document if the control record points at it.
func (s *Service) setAgenda(ctx context.Context, documentID uuid.UUID, onAgenda bool) (*domain.Document, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if err := requireID("document_id", documentID); err != nil {
		return nil, err
	}

	var (
		doc           *domain.Document
		stoppedRead   bool
		stoppedVoting bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, _, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}

		if sameID(ctrl.ReadingDocumentID, documentID) {
			ctrl.ReadingDocumentID = nil
			stoppedRead = true
		}
		if sameID(ctrl.VotingDocumentID, documentID) {
			ctrl.VotingDocumentID = nil
			stoppedVoting = true
		}
		if stoppedRead || stoppedVoting {
			if err := s.control.Save(txCtx, ctrl); err != nil {
				return fmt.Errorf("save control: %w", err)
			}
		}

		doc, err = s.documents.SetAgenda(txCtx, documentID, onAgenda)
		if err != nil {
			return fmt.Errorf("set agenda: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := domain.AuditActionAgendaRemove
	if onAgenda {
		action = domain.AuditActionAgendaAdd
	}
	s.audit.Record(ctx, action, map[string]any{
		"document_id":    documentID.String(),
		"stopped_read":   stoppedRead,
		"stopped_voting": stoppedVoting,
	})

	s.log.InfoContext(ctx, "agenda membership changed",
		slog.String("document_id", documentID.String()),
		slog.Bool("on_agenda", onAgenda),
		slog.String("actor_id", actor.ID.String()),
	)

	return doc, nil
}
