package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/speech"
)

type speechService interface {
	ListRequests(ctx context.Context, sessionID uuid.UUID) ([]domain.SpeechRequest, error)
	Approve(ctx context.Context, requestID uuid.UUID) (*domain.SpeechRequest, error)
	Reject(ctx context.Context, requestID uuid.UUID) (*domain.SpeechRequest, error)
	Delete(ctx context.Context, requestID uuid.UUID) error
	Reorder(ctx context.Context, input speech.ReorderInput) (*domain.SpeechRequest, error)
	StartSpeech(ctx context.Context, input speech.StartSpeechInput) (*domain.SpeechRequest, error)
	EndSpeech(ctx context.Context, requestID uuid.UUID) (*domain.SpeechRequest, error)
}

// SpeechHandler serves the operator side of the speech queue.
type SpeechHandler struct {
	svc speechService
	log *slog.Logger
}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler(svc speechService, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{svc: svc, log: logger.With("handler", "speech")}
}

// List handles GET /api/sessions/{id}/speech-requests.
func (h *SpeechHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	requests, err := h.svc.ListRequests(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpeechRequestResponses(requests))
}

// Approve handles POST /api/speech-requests/{id}/approve.
func (h *SpeechHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.withRequest(w, r, h.svc.Approve)
}

// Reject handles POST /api/speech-requests/{id}/reject.
func (h *SpeechHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.withRequest(w, r, h.svc.Reject)
}

// End handles POST /api/speech-requests/{id}/end.
func (h *SpeechHandler) End(w http.ResponseWriter, r *http.Request) {
	h.withRequest(w, r, h.svc.EndSpeech)
}

// Delete handles DELETE /api/speech-requests/{id}.
func (h *SpeechHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	OrderIndex int `json:"orderIndex"`
}

// Reorder handles PUT /api/speech-requests/{id}/order.
func (h *SpeechHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.Reorder(r.Context(), speech.ReorderInput{RequestID: id, OrderIndex: req.OrderIndex})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpeechRequestResponse(updated))
}

type startSpeechRequest struct {
	TimeLimitMinutes int `json:"timeLimitMinutes"`
}

// Start handles POST /api/speech-requests/{id}/start. A zero limit uses
// the default.
func (h *SpeechHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req startSpeechRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	started, err := h.svc.StartSpeech(r.Context(), speech.StartSpeechInput{RequestID: id, TimeLimitMinutes: req.TimeLimitMinutes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpeechRequestResponse(started))
}

func (h *SpeechHandler) withRequest(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.SpeechRequest, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpeechRequestResponse(req))
}
