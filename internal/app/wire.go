package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/dauchezhenri-coder/praxis-backend/internal/auth"
	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/generator"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/library"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/navigation"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/persistence"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/progression"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/render"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/trainer"
	"github.com/dauchezhenri-coder/praxis-backend/internal/transport/middleware"
	"github.com/dauchezhenri-coder/praxis-backend/internal/transport/rest"
	"github.com/dauchezhenri-coder/praxis-backend/pkg/delay"
)

// application is the fully wired service graph.
type application struct {
	handler     http.Handler
	hub         *render.Hub
	scheduler   *delay.Scheduler
	limiter     *middleware.RateLimiter
	library     *library.Service
	navigation  *navigation.Service
	progression *progression.Service
	trainer     *trainer.Service
	generator   *generator.Service
}

// newApplication loads persisted state from store and wires every service
// around it. Nothing is started; close releases the background helpers.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, store Store, clock clockwork.Clock) (*application, error) {
	gateway := persistence.NewService(logger, store, clock, cfg.Storage, cfg.Progression)

	lib, err := gateway.LoadLibrary(ctx)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	prog, err := gateway.LoadProgression(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progression: %w", err)
	}

	a := &application{
		hub:       render.NewHub(logger),
		scheduler: delay.NewScheduler(clock, logger),
	}

	a.progression = progression.NewService(logger, gateway, a.hub, clock, cfg.Progression, prog)

	// The catalog closure resolves a.library lazily: navigation and the
	// library depend on each other.
	a.navigation = navigation.NewService(logger,
		navigation.CatalogFunc(func(id string) bool { return a.library.HasSubject(id) }),
		a.hub, a.hub)

	a.library = library.NewService(logger, lib, library.Deps{
		Store:     gateway,
		Awards:    a.progression,
		Renderer:  a.hub,
		Selection: a.navigation,
		Content:   generator.Tables{},
		Notifier:  a.hub,
		Clock:     clock,
		Location:  cfg.Progression.Location,
	})

	awards := &refreshingProgression{Service: a.progression, screen: a.hub}

	a.generator = generator.NewService(logger, a.library, awards, a.hub, a.scheduler, cfg.Generator)

	a.trainer = trainer.NewService(logger, cfg.Trainer, nil, trainer.Deps{
		Awards:   a.progression,
		Router:   a.navigation,
		Renderer: a.hub,
		Notifier: a.hub,
	})

	a.hub.Attach(&render.Builder{
		Library:     a.library,
		View:        a.navigation,
		Progression: a.progression,
		Trainer:     a.trainer,
	})

	var apiMiddleware []middleware.Middleware
	apiMiddleware = append(apiMiddleware, middleware.CORS(cfg.CORS))
	if cfg.RateLimit.Enabled {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitCleanup)
		apiMiddleware = append(apiMiddleware, a.limiter.Middleware())
	}
	if cfg.Auth.Enabled() {
		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		apiMiddleware = append(apiMiddleware, middleware.Auth(jwtManager))
	}

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(store, cfg.Storage.Driver, BuildVersion()),
		Screen:      rest.NewScreenHandler(a.hub, logger),
		Library:     rest.NewLibraryHandler(a.library, a.generator, logger),
		Navigation:  rest.NewNavigationHandler(a.navigation, logger),
		Progression: rest.NewProgressionHandler(awards, logger),
		Trainer:     rest.NewTrainerHandler(a.trainer, logger),
	}, middleware.Chain(apiMiddleware...))

	a.handler = middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)(router)

	return a, nil
}

// start grants the daily bonus if due and draws the first screen.
func (a *application) start(ctx context.Context) error {
	if _, err := a.progression.CheckDailyBonus(ctx); err != nil {
		return fmt.Errorf("daily bonus: %w", err)
	}
	a.hub.Render(ctx, "")
	return nil
}

// close lets pending generation tasks finish and disconnects subscribers.
func (a *application) close() {
	a.scheduler.Wait()
	a.scheduler.Close()
	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.hub.Close()
}

// refreshingProgression redraws the screen after awards made through the API
// or by the generator; the other services render on their own.
type refreshingProgression struct {
	*progression.Service
	screen interface{ Refresh(ctx context.Context) }
}

func (p *refreshingProgression) Award(ctx context.Context, points int) (domain.AwardResult, error) {
	res, err := p.Service.Award(ctx, points)
	if err == nil {
		p.screen.Refresh(ctx)
	}
	return res, err
}

func (p *refreshingProgression) AwardAction(ctx context.Context, activity domain.Activity) (domain.AwardResult, error) {
	res, err := p.Service.AwardAction(ctx, activity)
	if err == nil {
		p.screen.Refresh(ctx)
	}
	return res, err
}

func (p *refreshingProgression) CheckDailyBonus(ctx context.Context) (domain.DailyBonusResult, error) {
	res, err := p.Service.CheckDailyBonus(ctx)
	if err == nil && res.Awarded {
		p.screen.Refresh(ctx)
	}
	return res, err
}
