package agenda

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

// SetReading makes documentID the only document being read, or stops
// reading when documentID is nil. It returns the document now being read.
func (s *Service) SetReading(ctx context.Context, documentID *uuid.UUID) (*domain.Document, error) {
	actor, err := authz.Require(ctx, authz.Operators)
	if err != nil {
		return nil, err
	}
	if documentID != nil {
		if err := requireID("document_id", *documentID); err != nil {
			return nil, err
		}
	}

	var doc *domain.Document
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ctrl, _, err := s.control.Lock(txCtx)
		if err != nil {
			return fmt.Errorf("lock control: %w", err)
		}

		if documentID != nil {
			target, err := s.documents.GetByID(txCtx, *documentID)
			if err != nil {
				return fmt.Errorf("get document: %w", err)
			}
			sess, err := s.sessions.GetByID(txCtx, target.SessionID)
			if err != nil {
				return fmt.Errorf("get session: %w", err)
			}
			if sess.IsClosed() {
				return domain.NewConflictError(domain.ReasonSessionClosed)
			}
		}

		ctrl.ReadingDocumentID = documentID
		if err := s.control.Save(txCtx, ctrl); err != nil {
			return fmt.Errorf("save control: %w", err)
		}

		if documentID != nil {
			doc, err = s.documents.GetByID(txCtx, *documentID)
			if err != nil {
				return fmt.Errorf("reload document: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := map[string]any{"document_id": nil}
	logID := ""
	if documentID != nil {
		details["document_id"] = documentID.String()
		logID = documentID.String()
	}
	s.audit.Record(ctx, domain.AuditActionReadingSet, details)

	s.log.InfoContext(ctx, "reading set",
		slog.String("document_id", logID),
		slog.String("actor_id", actor.ID.String()),
	)

	return doc, nil
}
