// Package app provides application-level wiring for the dwex demo: it builds
// the session manager, the UI handler and the HTTP router from config.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"dwex-demo/internal/config"
	"dwex-demo/internal/db"
	"dwex-demo/internal/db/repository"
	"dwex-demo/internal/domain"
	"dwex-demo/internal/middleware"
	"dwex-demo/internal/router"
	"dwex-demo/internal/session"
	"dwex-demo/internal/shell/theme"
	"dwex-demo/internal/ui"
	"dwex-demo/internal/workspace"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg *config.Config
	// Pools is the preference database. Nil keeps theme preferences in
	// memory for the lifetime of each session.
	Pools  *db.Pools
	Logger *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Sessions    *session.Manager
	Routes      router.Table
	Workspace   *workspace.Config
	Preferences domain.PreferenceRepository // nil without a database
	UI          *ui.Handler
	Reaper      *session.Reaper
	Watcher     *workspace.Watcher // nil without WORKSPACE_FILE

	cfg    *config.Config
	logger *slog.Logger
}

// New wires the session manager, UI handler and background workers from
// the provided deps.
func New(_ context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// === Workspaces ===
	wsCfg := workspace.Default()
	if cfg.WorkspaceFile != "" {
		loaded, err := workspace.Load(cfg.WorkspaceFile)
		if err != nil {
			return nil, fmt.Errorf("load workspaces: %w", err)
		}
		wsCfg = loaded
	}

	routes := Routes()
	checkNavRoutes(routes, wsCfg, logger)

	// === Preferences ===
	var prefs domain.PreferenceRepository
	stores := func(string) theme.Store { return theme.NewMemoryStore() }
	if deps.Pools != nil {
		repo := repository.NewPreferenceRepo(deps.Pools)
		prefs = repo
		stores = func(clientID string) theme.Store { return repository.ForClient(repo, clientID) }
	}

	// === Sessions ===
	manager := session.NewManager(session.Options{
		Routes:      routes,
		Workspace:   wsCfg,
		EnableTabs:  cfg.EnableTabs,
		IdleTimeout: cfg.SessionIdleTimeout,
		Stores:      stores,
		Logger:      logger.With("component", "sessions"),
	})
	reaper, err := session.NewReaper(manager, cfg.SessionSweepSchedule, logger.With("component", "reaper"))
	if err != nil {
		return nil, err
	}

	var watcher *workspace.Watcher
	if cfg.WorkspaceFile != "" {
		watcher = workspace.NewWatcher(cfg.WorkspaceFile, func(c *workspace.Config) {
			checkNavRoutes(routes, c, logger)
			manager.ApplyWorkspaces(c)
		}, logger.With("component", "workspace-watcher"))
	}

	return &App{
		Sessions:    manager,
		Routes:      routes,
		Workspace:   wsCfg,
		Preferences: prefs,
		UI:          ui.NewHandler(manager, routes, prefs, logger, cfg.IsProduction()),
		Reaper:      reaper,
		Watcher:     watcher,
		cfg:         cfg,
		logger:      logger,
	}, nil
}

// Router builds the HTTP handler. ctx bounds the rate limiter's cleanup
// loop.
func (a *App) Router(ctx context.Context) http.Handler {
	cfg := a.cfg
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", a.health)
	ui.MountStatic(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Sessions(a.Sessions, cfg.IsProduction() || cfg.TLSEnabled()))
		r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}))
		ui.MountRoutes(r, a.UI)
	})
	return r
}

type healthResponse struct {
	Status         string `json:"status"`
	Sessions       int    `json:"sessions"`
	Workspaces     int    `json:"workspaces"`
	PersistedPrefs bool   `json:"persisted_prefs"`
	NextSweep      string `json:"next_sweep,omitempty"`
}

func (a *App) health(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{
		Status:         "ok",
		Sessions:       a.Sessions.Len(),
		Workspaces:     len(a.Sessions.Workspace().Workspaces),
		PersistedPrefs: a.Preferences != nil,
	}
	if next := a.Reaper.Next(); !next.IsZero() {
		resp.NextSweep = next.UTC().Format(time.RFC3339)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
