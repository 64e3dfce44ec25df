package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

type progressionService interface {
	Snapshot() domain.Progression
	Award(ctx context.Context, points int) (domain.AwardResult, error)
	AwardAction(ctx context.Context, activity domain.Activity) (domain.AwardResult, error)
	CheckDailyBonus(ctx context.Context) (domain.DailyBonusResult, error)
}

// ProgressionHandler serves the XP and streak endpoints.
type ProgressionHandler struct {
	svc progressionService
	log *slog.Logger
}

// NewProgressionHandler creates a ProgressionHandler.
func NewProgressionHandler(svc progressionService, logger *slog.Logger) *ProgressionHandler {
	return &ProgressionHandler{svc: svc, log: logger.With("handler", "progression")}
}

// Get handles GET /api/progression.
func (h *ProgressionHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := h.svc.Snapshot()
	writeJSON(w, http.StatusOK, progressionResponse{
		XP:             p.XP,
		Level:          p.Level,
		Streak:         p.Streak,
		LastActionDate: p.LastActionDate.String(),
	})
}

// awardRequest names either an activity or a raw point amount.
type awardRequest struct {
	Activity string `json:"activity"`
	Points   *int   `json:"points"`
}

// Award handles POST /api/progression/award.
func (h *ProgressionHandler) Award(w http.ResponseWriter, r *http.Request) {
	var req awardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		res domain.AwardResult
		err error
	)
	switch {
	case req.Activity != "" && req.Points != nil:
		err = domain.NewValidationError("activity", "give either activity or points, not both")
	case req.Activity != "":
		res, err = h.svc.AwardAction(r.Context(), domain.Activity(req.Activity))
	case req.Points != nil:
		res, err = h.svc.Award(r.Context(), *req.Points)
	default:
		err = domain.NewValidationError("activity", "required")
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAwardResponse(res))
}

// Daily handles POST /api/progression/daily.
func (h *ProgressionHandler) Daily(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.CheckDailyBonus(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dailyBonusResponse{
		Awarded: res.Awarded,
		Streak:  res.Streak,
		Award:   toAwardResponse(res.Award),
		NextAt:  res.NextAt.UTC().Format(time.RFC3339),
	})
}
