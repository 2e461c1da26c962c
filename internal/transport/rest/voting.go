package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/voting"
)

type votingService interface {
	StartVoting(ctx context.Context, input voting.ItemInput) (*domain.ActiveVote, error)
	EndVoting(ctx context.Context, input voting.ItemInput) (*domain.VoteResult, error)
	GetTally(ctx context.Context, input voting.ItemInput) (domain.Tally, error)
	GetResult(ctx context.Context, input voting.ItemInput) (*domain.VoteResult, error)
}

// VotingHandler opens and closes votes and reports their outcome.
type VotingHandler struct {
	svc votingService
	log *slog.Logger
}

// NewVotingHandler creates a VotingHandler.
func NewVotingHandler(svc votingService, logger *slog.Logger) *VotingHandler {
	return &VotingHandler{svc: svc, log: logger.With("handler", "voting")}
}

type votingItemRequest struct {
	ItemType string    `json:"itemType"`
	ItemID   uuid.UUID `json:"itemId"`
}

func (req votingItemRequest) input() voting.ItemInput {
	return voting.ItemInput{ItemType: domain.ItemType(req.ItemType), ItemID: req.ItemID}
}

// Start handles POST /api/voting/start.
func (h *VotingHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req votingItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	active, err := h.svc.StartVoting(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActiveVoteResponse(active))
}

// End handles POST /api/voting/end.
func (h *VotingHandler) End(w http.ResponseWriter, r *http.Request) {
	var req votingItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.EndVoting(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResultResponse(result))
}

// Tally handles GET /api/voting/{itemType}/{itemId}/tally.
func (h *VotingHandler) Tally(w http.ResponseWriter, r *http.Request) {
	input, err := itemFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tally, err := h.svc.GetTally(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTallyResponse(tally))
}

// Result handles GET /api/voting/{itemType}/{itemId}/result.
func (h *VotingHandler) Result(w http.ResponseWriter, r *http.Request) {
	input, err := itemFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.GetResult(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResultResponse(result))
}

func itemFromPath(r *http.Request) (voting.ItemInput, error) {
	id, err := pathID(r, "itemId")
	if err != nil {
		return voting.ItemInput{}, err
	}
	return voting.ItemInput{ItemType: domain.ItemType(chi.URLParam(r, "itemType")), ItemID: id}, nil
}
