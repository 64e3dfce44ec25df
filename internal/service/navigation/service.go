// Package navigation is the view-state controller: a three-level
// Grid → Hub → SubView state machine over the library.
package navigation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalog interface {
	HasSubject(id string) bool
}

type exiter interface {
	ExitLibrary(ctx context.Context)
}

type viewRenderer interface {
	Refresh(ctx context.Context)
}

// CatalogFunc adapts a function to the subject catalog the controller
// validates selections against.
type CatalogFunc func(id string) bool

// HasSubject calls f(id).
func (f CatalogFunc) HasSubject(id string) bool { return f(id) }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service holds the transient navigation state. It is not persisted.
type Service struct {
	mu       sync.Mutex
	state    domain.ViewState
	catalog  catalog
	exiter   exiter
	renderer viewRenderer
	log      *slog.Logger
}

// NewService creates a controller positioned on the grid. exiter and
// renderer may be nil.
func NewService(log *slog.Logger, catalog catalog, exiter exiter, renderer viewRenderer) *Service {
	return &Service{
		catalog:  catalog,
		exiter:   exiter,
		renderer: renderer,
		log:      log.With("service", "navigation"),
	}
}

// State returns a snapshot of the current view state.
func (s *Service) State() domain.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectSubject opens the hub of a subject, clearing any sub-view.
func (s *Service) SelectSubject(ctx context.Context, id string) (domain.ViewState, error) {
	if !s.catalog.HasSubject(id) {
		return s.State(), domain.ErrNotFound
	}

	s.mu.Lock()
	s.state = domain.ViewState{SelectedSubjectID: id}
	state := s.state
	s.mu.Unlock()

	s.log.DebugContext(ctx, "subject selected", slog.String("subject_id", id))
	s.refresh(ctx)
	return state, nil
}

// SetSubView opens a sub-view of the selected subject. Switching directly
// between sub-views is allowed; GoBack still returns to the hub first.
func (s *Service) SetSubView(ctx context.Context, v domain.SubView) (domain.ViewState, error) {
	if !v.IsValid() {
		return s.State(), domain.NewValidationError("sub_view", "must be flashcards or summaries")
	}

	s.mu.Lock()
	if s.state.SelectedSubjectID == "" {
		state := s.state
		s.mu.Unlock()
		return state, domain.ErrNoSubjectSelected
	}
	s.state.SubView = v
	state := s.state
	s.mu.Unlock()

	s.refresh(ctx)
	return state, nil
}

// GoBack moves exactly one level up. At the grid it asks the external
// navigator to leave the library and reports ExitedLibrary.
func (s *Service) GoBack(ctx context.Context) domain.BackResult {
	s.mu.Lock()
	var exited bool
	switch s.state.Level() {
	case domain.ViewLevelSubView:
		s.state.SubView = domain.SubViewNone
	case domain.ViewLevelHub:
		s.state.SelectedSubjectID = ""
	default:
		exited = true
	}
	state := s.state
	s.mu.Unlock()

	if exited {
		s.log.DebugContext(ctx, "leaving library")
		if s.exiter != nil {
			s.exiter.ExitLibrary(ctx)
		}
		return domain.BackResult{State: state, ExitedLibrary: true}
	}

	s.refresh(ctx)
	return domain.BackResult{State: state}
}

// LeaveSubView returns to the hub if the given sub-view is open. It is a
// no-op otherwise.
func (s *Service) LeaveSubView(ctx context.Context, v domain.SubView) {
	s.mu.Lock()
	if s.state.SubView != v || v == domain.SubViewNone {
		s.mu.Unlock()
		return
	}
	s.state.SubView = domain.SubViewNone
	s.mu.Unlock()

	s.refresh(ctx)
}

// RequireSelection returns the selected subject id or ErrNoSubjectSelected.
func (s *Service) RequireSelection() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SelectedSubjectID == "" {
		return "", domain.ErrNoSubjectSelected
	}
	return s.state.SelectedSubjectID, nil
}

func (s *Service) refresh(ctx context.Context) {
	if s.renderer != nil {
		s.renderer.Refresh(ctx)
	}
}
