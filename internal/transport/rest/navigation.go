package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

type navigationService interface {
	State() domain.ViewState
	SelectSubject(ctx context.Context, id string) (domain.ViewState, error)
	SetSubView(ctx context.Context, v domain.SubView) (domain.ViewState, error)
	GoBack(ctx context.Context) domain.BackResult
}

// NavigationHandler serves the view-state endpoints.
type NavigationHandler struct {
	svc navigationService
	log *slog.Logger
}

// NewNavigationHandler creates a NavigationHandler.
func NewNavigationHandler(svc navigationService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{svc: svc, log: logger.With("handler", "navigation")}
}

// Get handles GET /api/navigation.
func (h *NavigationHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toViewStateResponse(h.svc.State()))
}

type selectRequest struct {
	SubjectID string `json:"subjectId"`
}

// Select handles POST /api/navigation/select.
func (h *NavigationHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.svc.SelectSubject(r.Context(), req.SubjectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewStateResponse(state))
}

type subViewRequest struct {
	SubView string `json:"subView"`
}

// SubView handles POST /api/navigation/subview.
func (h *NavigationHandler) SubView(w http.ResponseWriter, r *http.Request) {
	var req subViewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.svc.SetSubView(r.Context(), domain.SubView(req.SubView))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewStateResponse(state))
}

// Back handles POST /api/navigation/back.
func (h *NavigationHandler) Back(w http.ResponseWriter, r *http.Request) {
	res := h.svc.GoBack(r.Context())
	writeJSON(w, http.StatusOK, backResponse{
		viewStateResponse: toViewStateResponse(res.State),
		ExitedLibrary:     res.ExitedLibrary,
	})
}
