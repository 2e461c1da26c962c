package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

type auditLog interface {
	List(ctx context.Context, action domain.AuditAction, limit, offset int) ([]domain.AuditRecord, error)
}

// AuditHandler exposes the audit trail to the clerk.
type AuditHandler struct {
	log   *slog.Logger
	audit auditLog
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(audit auditLog, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, log: logger.With("handler", "audit")}
}

// List handles GET /api/audit?action=&limit=&offset=.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.audit.List(r.Context(), domain.AuditAction(r.URL.Query().Get("action")), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditRecordResponses(records))
}
