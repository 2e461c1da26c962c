package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/agenda"
)

type matterService interface {
	CreateMatter(ctx context.Context, input agenda.CreateMatterInput) (*domain.Matter, error)
	UpdateMatter(ctx context.Context, input agenda.UpdateMatterInput) (*domain.Matter, error)
	GetMatter(ctx context.Context, matterID uuid.UUID) (*domain.Matter, error)
	ListMatters(ctx context.Context, input agenda.ListMattersInput) ([]domain.Matter, error)
	AttachMatter(ctx context.Context, sessionID uuid.UUID, matterID uuid.UUID) error
	DetachMatter(ctx context.Context, sessionID uuid.UUID, matterID uuid.UUID) error
}

// MatterHandler serves legislative matters and their session links.
type MatterHandler struct {
	svc matterService
	log *slog.Logger
}

// NewMatterHandler creates a MatterHandler.
func NewMatterHandler(svc matterService, logger *slog.Logger) *MatterHandler {
	return &MatterHandler{svc: svc, log: logger.With("handler", "matter")}
}

type matterRequest struct {
	Title       *string    `json:"title"`
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	SessionID   *uuid.UUID `json:"sessionId"`
}

// List handles GET /api/matters?sessionId=&status=&limit=&offset=.
func (h *MatterHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		input agenda.ListMattersInput
		err   error
	)
	if r.URL.Query().Get("sessionId") != "" {
		id, err := queryID(r, "sessionId")
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.SessionID = &id
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.MatterStatus(v)
		input.Status = &status
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	matters, err := h.svc.ListMatters(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatterResponses(matters))
}

// Create handles POST /api/matters.
func (h *MatterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req matterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.CreateMatter(r.Context(), agenda.CreateMatterInput{
		Title:       deref(req.Title),
		Type:        deref(req.Type),
		Description: req.Description,
		SessionID:   req.SessionID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMatterResponse(m))
}

// Get handles GET /api/matters/{id}.
func (h *MatterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.GetMatter(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatterResponse(m))
}

// Update handles PATCH /api/matters/{id}.
func (h *MatterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req matterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := agenda.UpdateMatterInput{
		MatterID:    id,
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.MatterStatus(*req.Status)
		input.Status = &status
	}

	m, err := h.svc.UpdateMatter(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatterResponse(m))
}

// Attach handles POST /api/sessions/{id}/matters/{matterId}.
func (h *MatterHandler) Attach(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, h.svc.AttachMatter)
}

// Detach handles DELETE /api/sessions/{id}/matters/{matterId}.
func (h *MatterHandler) Detach(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, h.svc.DetachMatter)
}

func (h *MatterHandler) link(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, uuid.UUID) error) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	matterID, err := pathID(r, "matterId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := op(r.Context(), sessionID, matterID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
