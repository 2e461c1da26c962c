package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

type snapshotService interface {
	CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

type queueService interface {
	ListQueue(ctx context.Context, sessionID uuid.UUID) (*domain.SpeechQueue, error)
}

type boardService interface {
	Quorum(ctx context.Context, sessionID uuid.UUID) (domain.Quorum, error)
	List(ctx context.Context, sessionID uuid.UUID) ([]domain.AttendanceEntry, error)
}

// PublicHandler serves the unauthenticated endpoints polled by the public
// panel.
type PublicHandler struct {
	display    snapshotService
	speeches   queueService
	attendance boardService
	log        *slog.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(display snapshotService, speeches queueService, attendance boardService, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{
		display:    display,
		speeches:   speeches,
		attendance: attendance,
		log:        logger.With("handler", "public"),
	}
}

// CurrentSession handles GET /api/public/current-session.
func (h *PublicHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.display.CurrentSnapshot(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// SpeechQueue handles GET /api/public/speech-requests?sessionId=.
func (h *PublicHandler) SpeechQueue(w http.ResponseWriter, r *http.Request) {
	sessionID, err := queryID(r, "sessionId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	queue, err := h.speeches.ListQueue(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpeechQueueResponse(*queue))
}

// Attendance handles GET /api/public/attendance?sessionId=.
func (h *PublicHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	sessionID, err := queryID(r, "sessionId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.attendance.List(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	quorum, err := h.attendance.Quorum(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := attendanceBoardResponse{
		Quorum:  toQuorumResponse(quorum),
		Entries: make([]attendanceEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, attendanceEntryResponse{
			VoterID:   e.VoterID,
			IsPresent: e.IsPresent,
			ArrivedAt: e.ArrivedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
