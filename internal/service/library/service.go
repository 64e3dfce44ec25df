// Package library is the document store: subjects, their documents and the
// open-folder set.
package library

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type libraryStore interface {
	SaveLibrary(ctx context.Context, lib *domain.Library)
}

type awarder interface {
	AwardAction(ctx context.Context, activity domain.Activity) (domain.AwardResult, error)
}

type renderer interface {
	Render(ctx context.Context, filter string)
}

type selection interface {
	RequireSelection() (string, error)
}

type contentSource interface {
	Summary(subjectID string) domain.SummaryContent
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service owns the library state. Every mutation is saved and rendered
// before it returns.
type Service struct {
	mu     sync.RWMutex
	lib    *domain.Library
	filter string

	store     libraryStore
	awards    awarder
	renderer  renderer
	selection selection
	content   contentSource
	notifier  notifier
	clock     clockwork.Clock
	loc       *time.Location
	log       *slog.Logger
}

// Deps groups the collaborators of the library store. Renderer, Selection
// and Notifier may be nil.
type Deps struct {
	Store     libraryStore
	Awards    awarder
	Renderer  renderer
	Selection selection
	Content   contentSource
	Notifier  notifier
	Clock     clockwork.Clock
	Location  *time.Location
}

// NewService creates a library store over initial, which is normally the
// value loaded by the persistence gateway.
func NewService(log *slog.Logger, initial *domain.Library, deps Deps) *Service {
	if initial == nil {
		initial = domain.NewLibrary()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	return &Service{
		lib:       initial,
		store:     deps.Store,
		awards:    deps.Awards,
		renderer:  deps.Renderer,
		selection: deps.Selection,
		content:   deps.Content,
		notifier:  deps.Notifier,
		clock:     deps.Clock,
		loc:       deps.Location,
		log:       log.With("service", "library"),
	}
}

// commitLocked saves the library. Caller holds s.mu for writing.
func (s *Service) commitLocked(ctx context.Context) {
	s.store.SaveLibrary(ctx, s.lib)
}

func (s *Service) render(ctx context.Context) {
	if s.renderer == nil {
		return
	}
	s.renderer.Render(ctx, s.Filter())
}

func (s *Service) award(ctx context.Context, activity domain.Activity) *domain.AwardResult {
	if s.awards == nil {
		return nil
	}
	res, err := s.awards.AwardAction(ctx, activity)
	if err != nil {
		s.log.WarnContext(ctx, "award failed", slog.String("activity", activity.String()), slog.Any("error", err))
		return nil
	}
	return &res
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.clock.Now(), s.loc)
}
