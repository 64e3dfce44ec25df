package rest

import (
	"net/http"

	"github.com/dauchezhenri-coder/praxis-backend/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Screen      *ScreenHandler
	Library     *LibraryHandler
	Navigation  *NavigationHandler
	Progression *ProgressionHandler
	Trainer     *TrainerHandler
}

// NewRouter builds the HTTP mux. Health probes bypass api; every /api route
// is wrapped by it.
func NewRouter(h Handlers, api middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	routes := http.NewServeMux()

	routes.HandleFunc("GET /api/screen", h.Screen.Get)
	routes.HandleFunc("GET /api/events", h.Screen.Events)

	routes.HandleFunc("GET /api/library", h.Library.Get)
	routes.HandleFunc("GET /api/library/search", h.Library.Search)
	routes.HandleFunc("PUT /api/library/filter", h.Library.SetFilter)
	routes.HandleFunc("POST /api/library/import", h.Library.Import)
	routes.HandleFunc("POST /api/library/subjects", h.Library.AddSubject)
	routes.HandleFunc("POST /api/library/subjects/{id}/documents", h.Library.AddDocuments)
	routes.HandleFunc("DELETE /api/library/subjects/{id}/documents/{name}", h.Library.DeleteDocument)
	routes.HandleFunc("POST /api/library/subjects/{id}/toggle", h.Library.ToggleFolder)
	routes.HandleFunc("POST /api/library/subjects/{id}/generate", h.Library.Generate)
	routes.HandleFunc("POST /api/library/subjects/{id}/flashcards", h.Library.Flashcards)
	routes.HandleFunc("GET /api/library/subjects/{id}/sheet", h.Library.ExpertSheet)
	routes.HandleFunc("POST /api/library/subjects/{id}/sheet/open", h.Library.OpenSheet)

	routes.HandleFunc("GET /api/navigation", h.Navigation.Get)
	routes.HandleFunc("POST /api/navigation/select", h.Navigation.Select)
	routes.HandleFunc("POST /api/navigation/subview", h.Navigation.SubView)
	routes.HandleFunc("POST /api/navigation/back", h.Navigation.Back)

	routes.HandleFunc("GET /api/progression", h.Progression.Get)
	routes.HandleFunc("POST /api/progression/award", h.Progression.Award)
	routes.HandleFunc("POST /api/progression/daily", h.Progression.Daily)

	routes.HandleFunc("GET /api/trainer/session", h.Trainer.Current)
	routes.HandleFunc("POST /api/trainer/session", h.Trainer.Start)
	routes.HandleFunc("POST /api/trainer/reveal", h.Trainer.Reveal)
	routes.HandleFunc("POST /api/trainer/grade", h.Trainer.Grade)

	var apiHandler http.Handler = routes
	if api != nil {
		apiHandler = api(routes)
	}
	mux.Handle("/api/", apiHandler)

	return mux
}
