package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/agenda"
)

type documentService interface {
	CreateDocument(ctx context.Context, input agenda.CreateDocumentInput) (*domain.Document, error)
	UpdateDocument(ctx context.Context, input agenda.UpdateDocumentInput) (*domain.Document, error)
	DeleteDocument(ctx context.Context, documentID uuid.UUID) error
	GetDocument(ctx context.Context, documentID uuid.UUID) (*domain.Document, error)
	ListDocuments(ctx context.Context, sessionID uuid.UUID, onlyAgenda bool) ([]domain.Document, error)
	MoveToAgenda(ctx context.Context, documentID uuid.UUID) (*domain.Document, error)
	RemoveFromAgenda(ctx context.Context, documentID uuid.UUID) (*domain.Document, error)
	SetReading(ctx context.Context, documentID *uuid.UUID) (*domain.Document, error)
}

// DocumentHandler serves session documents, the agenda and the reading
// pointer.
type DocumentHandler struct {
	svc documentService
	log *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc documentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, log: logger.With("handler", "document")}
}

type documentRequest struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	Phase       *string `json:"phase"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

// List handles GET /api/sessions/{id}/documents?agenda=.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	docs, err := h.svc.ListDocuments(r.Context(), sessionID, queryBool(r, "agenda"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponses(docs))
}

// Create handles POST /api/sessions/{id}/documents.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req documentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := h.svc.CreateDocument(r.Context(), agenda.CreateDocumentInput{
		SessionID:   sessionID,
		Title:       deref(req.Title),
		Type:        deref(req.Type),
		Phase:       deref(req.Phase),
		Author:      req.Author,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withDocument(w, r, h.svc.GetDocument)
}

// Update handles PATCH /api/documents/{id}.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req documentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := h.svc.UpdateDocument(r.Context(), agenda.UpdateDocumentInput{
		DocumentID:  id,
		Title:       req.Title,
		Type:        req.Type,
		Phase:       req.Phase,
		Author:      req.Author,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteDocument(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddToAgenda handles POST /api/documents/{id}/agenda.
func (h *DocumentHandler) AddToAgenda(w http.ResponseWriter, r *http.Request) {
	h.withDocument(w, r, h.svc.MoveToAgenda)
}

// RemoveFromAgenda handles DELETE /api/documents/{id}/agenda.
func (h *DocumentHandler) RemoveFromAgenda(w http.ResponseWriter, r *http.Request) {
	h.withDocument(w, r, h.svc.RemoveFromAgenda)
}

type readingRequest struct {
	DocumentID *uuid.UUID `json:"documentId"`
}

// SetReading handles PUT /api/reading. A null documentId clears the pointer.
func (h *DocumentHandler) SetReading(w http.ResponseWriter, r *http.Request) {
	var req readingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := h.svc.SetReading(r.Context(), req.DocumentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if doc == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (h *DocumentHandler) withDocument(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Document, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	doc, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
