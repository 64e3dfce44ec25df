// Package trainer runs Leitner-style flashcard sessions.
package trainer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type awarder interface {
	AwardAction(ctx context.Context, activity domain.Activity) (domain.AwardResult, error)
}

type router interface {
	LeaveSubView(ctx context.Context, v domain.SubView)
}

type viewRenderer interface {
	Refresh(ctx context.Context)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service holds at most one active session.
type Service struct {
	mu      sync.Mutex
	session *Session

	deck     []domain.Card
	cfg      config.TrainerConfig
	awards   awarder
	router   router
	renderer viewRenderer
	notifier notifier
	log      *slog.Logger
}

// Deps groups the trainer's collaborators. Router, Renderer and Notifier may
// be nil.
type Deps struct {
	Awards   awarder
	Router   router
	Renderer viewRenderer
	Notifier notifier
}

// NewService creates a trainer over deck; an empty deck uses DefaultDeck.
func NewService(log *slog.Logger, cfg config.TrainerConfig, deck []domain.Card, deps Deps) *Service {
	if len(deck) == 0 {
		deck = DefaultDeck()
	}
	return &Service{
		deck:     deck,
		cfg:      cfg,
		awards:   deps.Awards,
		router:   deps.Router,
		renderer: deps.Renderer,
		notifier: deps.Notifier,
		log:      log.With("service", "trainer"),
	}
}

// Start begins a new session from the configured baseline, replacing any
// session in progress.
func (s *Service) Start(ctx context.Context) domain.TrainerState {
	s.mu.Lock()
	s.session = NewSession(s.deck, s.cfg.BaselineAnswered, s.cfg.Target, s.cfg.BaselinePoints)
	state := s.session.State()
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session started",
		slog.Int("answered", state.Answered),
		slog.Int("target", state.Target),
	)
	s.refresh(ctx)
	return state
}

// Current returns the active session state.
func (s *Service) Current() (domain.TrainerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.TrainerState{}, domain.ErrNoActiveSession
	}
	return s.session.State(), nil
}

// Reveal shows the answer of the current card.
func (s *Service) Reveal(ctx context.Context) (domain.TrainerState, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return domain.TrainerState{}, domain.ErrNoActiveSession
	}
	s.session.Reveal()
	state := s.session.State()
	s.mu.Unlock()

	s.refresh(ctx)
	return state, nil
}

// Grade scores the current card. When the target is reached the session is
// closed, the completion reward is granted and the flashcards view is left.
func (s *Service) Grade(ctx context.Context, tier domain.GradeTier) (domain.GradeResult, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return domain.GradeResult{}, domain.ErrNoActiveSession
	}
	res, err := s.session.Grade(tier)
	if err == nil && res.Completed {
		s.session = nil
	}
	s.mu.Unlock()

	if err != nil {
		s.refresh(ctx)
		return res, fmt.Errorf("trainer.Grade: %w", err)
	}

	if res.Completed {
		s.complete(ctx, &res)
	}
	s.refresh(ctx)
	return res, nil
}

func (s *Service) complete(ctx context.Context, res *domain.GradeResult) {
	s.log.InfoContext(ctx, "session complete", slog.Int("points", res.Points))

	if s.awards != nil {
		award, err := s.awards.AwardAction(ctx, domain.ActivityCompleteFlashcards)
		if err != nil {
			s.log.WarnContext(ctx, "completion award failed", slog.Any("error", err))
		} else {
			res.Award = &award
		}
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, domain.Notice{
			Kind:    domain.NoticeSessionComplete,
			Message: fmt.Sprintf("Session terminée ! +%d XP gagnés", res.Points),
		})
	}
	if s.router != nil {
		s.router.LeaveSubView(ctx, domain.SubViewFlashcards)
	}
}

func (s *Service) refresh(ctx context.Context) {
	if s.renderer != nil {
		s.renderer.Refresh(ctx)
	}
}
