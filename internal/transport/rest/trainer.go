package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

type trainerService interface {
	Start(ctx context.Context) domain.TrainerState
	Current() (domain.TrainerState, error)
	Reveal(ctx context.Context) (domain.TrainerState, error)
	Grade(ctx context.Context, tier domain.GradeTier) (domain.GradeResult, error)
}

// TrainerHandler serves the flashcard session endpoints.
type TrainerHandler struct {
	svc trainerService
	log *slog.Logger
}

// NewTrainerHandler creates a TrainerHandler.
func NewTrainerHandler(svc trainerService, logger *slog.Logger) *TrainerHandler {
	return &TrainerHandler{svc: svc, log: logger.With("handler", "trainer")}
}

// Start handles POST /api/trainer/session.
func (h *TrainerHandler) Start(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, toTrainerStateResponse(h.svc.Start(r.Context())))
}

// Current handles GET /api/trainer/session.
func (h *TrainerHandler) Current(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Current()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTrainerStateResponse(state))
}

// Reveal handles POST /api/trainer/reveal.
func (h *TrainerHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Reveal(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTrainerStateResponse(state))
}

type gradeRequest struct {
	Tier string `json:"tier"`
}

// Grade handles POST /api/trainer/grade.
func (h *TrainerHandler) Grade(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Grade(r.Context(), domain.GradeTier(req.Tier))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGradeResponse(res))
}
