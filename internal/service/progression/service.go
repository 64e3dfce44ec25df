// Package progression owns the learner's XP, level and daily streak.
package progression

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressionStore interface {
	SaveProgression(ctx context.Context, p domain.Progression)
}

type levelUpListener interface {
	LevelUp(ctx context.Context, event domain.LevelUpEvent)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the progression engine. All mutations are serialised and saved
// before returning.
type Service struct {
	mu       sync.Mutex
	state    domain.Progression
	store    progressionStore
	listener levelUpListener
	clock    clockwork.Clock
	loc      *time.Location
	perLevel int
	log      *slog.Logger
}

// NewService creates a progression engine starting from initial, which is
// normally the value returned by the persistence gateway. listener may be nil.
func NewService(
	log *slog.Logger,
	store progressionStore,
	listener levelUpListener,
	clock clockwork.Clock,
	cfg config.ProgressionConfig,
	initial domain.Progression,
) *Service {
	perLevel := cfg.XPPerLevel
	if perLevel <= 0 {
		perLevel = domain.DefaultXPPerLevel
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		state:    initial.Normalized(perLevel),
		store:    store,
		listener: listener,
		clock:    clock,
		loc:      loc,
		perLevel: perLevel,
		log:      log.With("service", "progression"),
	}
}

// Snapshot returns the current progression.
func (s *Service) Snapshot() domain.Progression {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// XPPerLevel returns the configured level span.
func (s *Service) XPPerLevel() int {
	return s.perLevel
}
