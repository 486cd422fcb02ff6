// Package session keeps the per-client shell state and evicts idle clients.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
	"dwex-demo/internal/shell"
	"dwex-demo/internal/shell/keys"
	"dwex-demo/internal/shell/splitview"
	"dwex-demo/internal/shell/tabs"
	"dwex-demo/internal/shell/theme"
	"dwex-demo/internal/workspace"
)

// Session is the UI state of one browser client.
type Session struct {
	ID string

	mu       sync.Mutex
	lastSeen time.Time

	Nav   *router.Recorder
	Shell *shell.Shell
	Tabs  *tabs.Service
	Split *splitview.Service
	Drag  *splitview.Drag
	Theme *theme.Service
	Keys  *keys.Registry
}

// Do runs fn under the session lock. All reads and mutations of the session
// state go through Do so that each request sees a consistent state.
func (s *Session) Do(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// LastSeen returns when the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// StoreFactory returns the preference store for a client.
type StoreFactory func(clientID string) theme.Store

// Options configures a Manager.
type Options struct {
	Routes      router.Table
	Workspace   *workspace.Config
	EnableTabs  bool
	IdleTimeout time.Duration
	Stores      StoreFactory
	Logger      *slog.Logger
	Now         func() time.Time
}

// Manager owns every live session.
type Manager struct {
	routes      router.Table
	enableTabs  bool
	idleTimeout time.Duration
	stores      StoreFactory
	logger      *slog.Logger
	now         func() time.Time

	mu       sync.RWMutex
	cfg      *workspace.Config
	sessions map[string]*Session
}

// NewManager creates an empty Manager.
func NewManager(opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Workspace == nil {
		opts.Workspace = workspace.Default()
	}
	return &Manager{
		routes:      opts.Routes,
		enableTabs:  opts.EnableTabs,
		idleTimeout: opts.IdleTimeout,
		stores:      opts.Stores,
		logger:      opts.Logger,
		now:         opts.Now,
		cfg:         opts.Workspace,
		sessions:    make(map[string]*Session),
	}
}

// Get returns the session for id and marks it as used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.touch(m.now())
	}
	return s, ok
}

// Create starts a session with a fresh id. The theme preference is loaded
// for that id.
func (m *Manager) Create(ctx context.Context) *Session {
	return m.create(ctx, domain.NewID())
}

// GetOrCreate returns the session for id, creating one under id when it is
// a well-formed id that is not live, and under a fresh id otherwise.
func (m *Manager) GetOrCreate(ctx context.Context, id string) (*Session, bool) {
	if s, ok := m.Get(id); ok {
		return s, false
	}
	if !domain.IsValidID(id) {
		id = domain.NewID()
	}
	return m.create(ctx, id), true
}

func (m *Manager) create(ctx context.Context, id string) *Session {
	m.mu.RLock()
	cfg := m.cfg
	m.mu.RUnlock()

	logger := m.logger.With("session", id)
	var store theme.Store
	if m.stores != nil {
		store = m.stores(id)
	}

	nav := &router.Recorder{}
	tabSvc := tabs.NewService(nav, logger.With("component", "tabs"))
	split := splitview.NewService(m.routes, logger.With("component", "splitview"))
	s := &Session{
		ID:       id,
		lastSeen: m.now(),
		Nav:      nav,
		Tabs:     tabSvc,
		Split:    split,
		Drag:     splitview.NewDrag(split),
		Theme:    theme.NewService(ctx, store, logger.With("component", "theme")),
		Keys:     keys.NewDefaultRegistry(),
	}
	s.Shell = shell.New(shell.Config{
		Workspaces:    cfg.Workspaces,
		SettingsNav:   cfg.SettingsNav,
		SettingsRoute: cfg.SettingsRoute,
		ProfileRoute:  cfg.ProfileRoute,
		EnableTabs:    m.enableTabs,
	}, nav, tabSvc, split, logger.With("component", "shell"))

	m.mu.Lock()
	if existing, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return existing
	}
	m.sessions[id] = s
	m.mu.Unlock()

	m.logger.Debug("session created", "session", id)
	return s
}

// Remove drops the session for id.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Workspace returns the current workspace configuration.
func (m *Manager) Workspace() *workspace.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Routes returns the route table sessions resolve against.
func (m *Manager) Routes() router.Table { return m.routes }

// ApplyWorkspaces installs cfg for new sessions and pushes it into every
// live session.
func (m *Manager) ApplyWorkspaces(cfg *workspace.Config) {
	m.mu.Lock()
	m.cfg = cfg
	live := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		live = append(live, s)
	}
	m.mu.Unlock()

	for _, s := range live {
		s.Do(func(s *Session) {
			s.Shell.SetWorkspaces(cfg.Workspaces, cfg.SettingsNav)
		})
	}
	m.logger.Info("workspace configuration applied", "sessions", len(live))
}

// Sweep evicts sessions idle for longer than the idle timeout and returns
// how many were removed. A zero timeout disables eviction.
func (m *Manager) Sweep(now time.Time) int {
	if m.idleTimeout <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen()) > m.idleTimeout {
			delete(m.sessions, id)
			n++
		}
	}
	if n > 0 {
		m.logger.Info("evicted idle sessions", "count", n, "remaining", len(m.sessions))
	}
	return n
}

type sessionKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
