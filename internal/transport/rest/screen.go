package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dauchezhenri-coder/praxis-backend/internal/service/render"
)

const heartbeatInterval = 15 * time.Second

type screenSource interface {
	Screen(filter string) (render.Screen, bool)
	Filter() string
	Subscribe() *render.Subscriber
	Unsubscribe(sub *render.Subscriber)
}

// ScreenHandler serves the rendered screen and its live event stream.
type ScreenHandler struct {
	hub       screenSource
	heartbeat time.Duration
	log       *slog.Logger
}

// NewScreenHandler creates a ScreenHandler.
func NewScreenHandler(hub screenSource, logger *slog.Logger) *ScreenHandler {
	return &ScreenHandler{hub: hub, heartbeat: heartbeatInterval, log: logger.With("handler", "screen")}
}

// Get handles GET /api/screen. Without a filter query parameter the last
// rendered filter is used.
func (h *ScreenHandler) Get(w http.ResponseWriter, r *http.Request) {
	filter := h.hub.Filter()
	if r.URL.Query().Has("filter") {
		filter = r.URL.Query().Get("filter")
	}

	screen, ok := h.hub.Screen(filter)
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "screen not ready")
		return
	}
	writeJSON(w, http.StatusOK, screen)
}

// Events handles GET /api/events as a server-sent event stream. The current
// screen is sent first, then every broadcast event.
func (h *ScreenHandler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	log := h.log.With(slog.String("subscriber_id", sub.ID.String()))

	if screen, ok := h.hub.Screen(h.hub.Filter()); ok {
		if err := writeEvent(w, render.Event{Type: render.EventScreen, Data: screen}); err != nil {
			log.WarnContext(ctx, "write initial screen", slog.String("error", err.Error()))
			return
		}
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			log.DebugContext(ctx, "event stream closed by client")
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case e, ok := <-sub.Events:
			if !ok {
				return
			}
			if err := writeEvent(w, e); err != nil {
				log.WarnContext(ctx, "write event", slog.String("error", err.Error()))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, e render.Event) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Type, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, data)
	return err
}
