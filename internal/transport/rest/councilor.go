package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/speech"
	"github.com/heartmarshall/camara-backend/internal/service/voting"
)

type presenceService interface {
	MarkPresent(ctx context.Context, sessionID uuid.UUID) (*domain.Attendance, error)
}

type statusService interface {
	CouncilorStatus(ctx context.Context) (*domain.CouncilorStatus, error)
}

type ballotService interface {
	CastVote(ctx context.Context, input voting.CastVoteInput) (*domain.Vote, error)
}

type speechSubmitter interface {
	Submit(ctx context.Context, input speech.SubmitInput) (*domain.SpeechRequest, error)
}

// CouncilorHandler serves the endpoints used from a councilor's device.
type CouncilorHandler struct {
	attendance presenceService
	display    statusService
	voting     ballotService
	speeches   speechSubmitter
	log        *slog.Logger
}

// NewCouncilorHandler creates a CouncilorHandler.
func NewCouncilorHandler(
	attendance presenceService,
	display statusService,
	voting ballotService,
	speeches speechSubmitter,
	logger *slog.Logger,
) *CouncilorHandler {
	return &CouncilorHandler{
		attendance: attendance,
		display:    display,
		voting:     voting,
		speeches:   speeches,
		log:        logger.With("handler", "councilor"),
	}
}

type presenceRequest struct {
	SessionID uuid.UUID `json:"sessionId"`
}

// Presence handles POST /api/councilor/presence.
func (h *CouncilorHandler) Presence(w http.ResponseWriter, r *http.Request) {
	var req presenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.attendance.MarkPresent(r.Context(), req.SessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, attendanceResponse{
		SessionID: a.SessionID,
		VoterID:   a.VoterID,
		IsPresent: a.IsPresent,
		ArrivedAt: a.ArrivedAt,
	})
}

// Status handles GET /api/councilor/status.
func (h *CouncilorHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.display.CouncilorStatus(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCouncilorStatusResponse(status))
}

type castVoteRequest struct {
	ItemType string    `json:"itemType"`
	ItemID   uuid.UUID `json:"itemId"`
	VoteType string    `json:"voteType"`
}

// Vote handles POST /api/councilor/votes.
func (h *CouncilorHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	vote, err := h.voting.CastVote(r.Context(), voting.CastVoteInput{
		ItemInput: voting.ItemInput{ItemType: domain.ItemType(req.ItemType), ItemID: req.ItemID},
		VoteType:  domain.VoteType(req.VoteType),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVoteResponse(vote))
}

type submitSpeechRequest struct {
	SessionID         uuid.UUID  `json:"sessionId"`
	Subject           string     `json:"subject"`
	Type              *string    `json:"type"`
	UserID            *uuid.UUID `json:"userId"`
	CitizenName       *string    `json:"citizenName"`
	CitizenProfession *string    `json:"citizenProfession"`
}

func (req submitSpeechRequest) input() speech.SubmitInput {
	in := speech.SubmitInput{
		SessionID:         req.SessionID,
		Subject:           req.Subject,
		UserID:            req.UserID,
		CitizenName:       req.CitizenName,
		CitizenProfession: req.CitizenProfession,
	}
	if req.Type != nil {
		t := domain.SpeechType(*req.Type)
		in.Type = &t
	}
	return in
}

// SubmitSpeech handles POST /api/councilor/speech-requests and the clerk's
// POST /api/speech-requests.
func (h *CouncilorHandler) SubmitSpeech(w http.ResponseWriter, r *http.Request) {
	var req submitSpeechRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.speeches.Submit(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSpeechRequestResponse(created))
}
