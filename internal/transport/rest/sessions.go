package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/session"
)

type sessionService interface {
	CreateSession(ctx context.Context, input session.CreateSessionInput) (*domain.Session, error)
	UpdateSession(ctx context.Context, input session.UpdateSessionInput) (*domain.Session, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	ListSessions(ctx context.Context, input session.ListSessionsInput) (*session.SessionList, error)
	SetPhase(ctx context.Context, input session.SetPhaseInput) (*domain.Session, error)
	StartSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	CloseSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	SetAttendanceOpen(ctx context.Context, sessionID uuid.UUID, open bool) (*domain.Session, error)
	SetSpeechRequestsOpen(ctx context.Context, sessionID uuid.UUID, open bool) (*domain.Session, error)
	StartTimer(ctx context.Context, input session.StartTimerInput) (*domain.Session, error)
	StopTimer(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
}

// SessionHandler serves the session lifecycle endpoints of the operator
// console.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type sessionRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Quorum      *int       `json:"quorum"`
}

// List handles GET /api/sessions?status=&year=&limit=&offset=.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		input session.ListSessionsInput
		err   error
	)
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.SessionStatus(v)
		input.Status = &status
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := queryInt(r, "year")
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.Year = &year
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListSessions(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionListResponse{Items: toSessionSummaries(list.Items), Total: list.Total})
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.CreateSession(r.Context(), session.CreateSessionInput{
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Quorum:      req.Quorum,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(s))
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.GetSession)
}

// Update handles PATCH /api/sessions/{id}.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req sessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.UpdateSession(r.Context(), session.UpdateSessionInput{
		SessionID:   id,
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Quorum:      req.Quorum,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(s))
}

// Delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type phaseRequest struct {
	Status string `json:"status"`
}

// SetPhase handles PUT /api/sessions/{id}/phase.
func (h *SessionHandler) SetPhase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req phaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.SetPhase(r.Context(), session.SetPhaseInput{SessionID: id, Status: domain.SessionStatus(req.Status)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(s))
}

// Start handles POST /api/sessions/{id}/start.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.StartSession)
}

// Close handles POST /api/sessions/{id}/close.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.CloseSession)
}

type toggleRequest struct {
	Open bool `json:"open"`
}

// SetAttendance handles PUT /api/sessions/{id}/attendance.
func (h *SessionHandler) SetAttendance(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.SetAttendanceOpen)
}

// SetSpeechRequests handles PUT /api/sessions/{id}/speech-requests-toggle.
func (h *SessionHandler) SetSpeechRequests(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.SetSpeechRequestsOpen)
}

type timerRequest struct {
	DurationSeconds int     `json:"durationSeconds"`
	Phase           *string `json:"phase"`
}

// StartTimer handles POST /api/sessions/{id}/timer.
func (h *SessionHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req timerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.StartTimer(r.Context(), session.StartTimerInput{
		SessionID:       id,
		DurationSeconds: req.DurationSeconds,
		Phase:           req.Phase,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(s))
}

// StopTimer handles DELETE /api/sessions/{id}/timer.
func (h *SessionHandler) StopTimer(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.StopTimer)
}

func (h *SessionHandler) withSession(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Session, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(s))
}

func (h *SessionHandler) toggle(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, bool) (*domain.Session, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := op(r.Context(), id, req.Open)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(s))
}
