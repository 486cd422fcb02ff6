package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
	"dwex-demo/internal/shell/keys"
	"dwex-demo/internal/shell/theme"
	"dwex-demo/internal/workspace"
)

func testRoutes() router.Table {
	return router.Table{
		{Path: "dashboard", Title: "Dashboard", Component: "dashboard"},
		{Path: "deals", Title: "Deals", Component: "deals"},
	}
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newManager(t *testing.T, c *clock) *Manager {
	t.Helper()
	stores := map[string]*theme.MemoryStore{}
	var mu sync.Mutex
	return NewManager(Options{
		Routes:      testRoutes(),
		EnableTabs:  true,
		IdleTimeout: 30 * time.Minute,
		Now:         c.Now,
		Stores: func(id string) theme.Store {
			mu.Lock()
			defer mu.Unlock()
			if stores[id] == nil {
				stores[id] = theme.NewMemoryStore()
			}
			return stores[id]
		},
	})
}

func TestManager_CreateGetRemove(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})

	s := m.Create(context.Background())
	require.NotNil(t, s)
	assert.True(t, domain.IsValidID(s.ID))
	assert.Equal(t, 1, m.Len())

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	m.Remove(s.ID)
	_, ok = m.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestManager_GetOrCreate(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})
	ctx := context.Background()

	s, created := m.GetOrCreate(ctx, "not-a-uuid")
	require.True(t, created)
	assert.NotEqual(t, "not-a-uuid", s.ID)

	again, created := m.GetOrCreate(ctx, s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	id := domain.NewID()
	restored, created := m.GetOrCreate(ctx, id)
	assert.True(t, created)
	assert.Equal(t, id, restored.ID, "a well-formed id from an expired cookie is reused")
}

func TestManager_ThemePersistsAcrossSessionsWithSameID(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})
	ctx := context.Background()

	s := m.Create(ctx)
	s.Do(func(s *Session) {
		require.NoError(t, s.Theme.SetMode(ctx, domain.ThemeDark))
	})
	m.Remove(s.ID)

	restored, _ := m.GetOrCreate(ctx, s.ID)
	assert.Equal(t, domain.ThemeDark, restored.Theme.Mode())
	assert.Empty(t, restored.Tabs.Tabs(), "tabs are not persisted")
}

func TestManager_NewSessionUsesWorkspaceConfig(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})
	s := m.Create(context.Background())

	assert.Equal(t, "sales", s.Shell.ActiveWorkspaceID())
	assert.True(t, s.Tabs.Enabled())
	_, ok := s.Tabs.Registered("/documents/all")
	assert.True(t, ok)
}

func TestManager_ApplyWorkspaces(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})
	s := m.Create(context.Background())

	cfg, err := workspace.Parse([]byte(`
workspaces:
  - id: solo
    label: Solo
    nav:
      - { label: Home, route: /home }
`))
	require.NoError(t, err)
	m.ApplyWorkspaces(cfg)

	assert.Same(t, cfg, m.Workspace())
	s.Do(func(s *Session) {
		assert.Equal(t, "solo", s.Shell.ActiveWorkspaceID())
		_, ok := s.Tabs.Registered("/dashboard")
		assert.False(t, ok)
	})

	fresh := m.Create(context.Background())
	assert.Equal(t, "solo", fresh.Shell.ActiveWorkspaceID())
}

func TestManager_Sweep(t *testing.T) {
	t.Parallel()
	c := &clock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	m := newManager(t, c)
	ctx := context.Background()

	idle := m.Create(ctx)
	c.Advance(20 * time.Minute)
	busy := m.Create(ctx)
	c.Advance(15 * time.Minute)
	_, ok := m.Get(busy.ID)
	require.True(t, ok)

	n := m.Sweep(c.Now())

	assert.Equal(t, 1, n)
	_, ok = m.Get(idle.ID)
	assert.False(t, ok)
	_, ok = m.Get(busy.ID)
	assert.True(t, ok)
}

func TestManager_SweepDisabled(t *testing.T) {
	t.Parallel()
	m := NewManager(Options{Routes: testRoutes()})
	m.Create(context.Background())
	assert.Equal(t, 0, m.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, m.Len())
}

func TestSession_DoSerializes(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})
	s := m.Create(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(s *Session) {
				s.Shell.OnNavigationEnd("/dashboard")
				s.Shell.OnNavigationEnd("/deals")
			})
		}()
	}
	wg.Wait()

	s.Do(func(s *Session) {
		assert.Len(t, s.Tabs.Tabs(), 2)
	})
}

func TestRunShortcut(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})
	s := m.Create(context.Background())
	ctx := context.Background()

	s.Do(func(s *Session) {
		s.Shell.OnNavigationEnd("/dashboard")
		s.Shell.OnNavigationEnd("/deals")

		require.True(t, s.RunShortcut(ctx, keys.ActionTogglePin))
		assert.True(t, s.Tabs.Tabs()[0].Pinned)

		require.True(t, s.RunShortcut(ctx, keys.ActionToggleSplit))
		assert.True(t, s.Split.IsActive())
		assert.Equal(t, "Deals", s.Split.State().Title)
		require.True(t, s.RunShortcut(ctx, keys.ActionToggleSplit))
		assert.False(t, s.Split.IsActive())

		require.True(t, s.RunShortcut(ctx, keys.ActionToggleTheme))
		assert.Equal(t, domain.ThemeLight, s.Theme.Mode())

		require.True(t, s.RunShortcut(ctx, keys.ActionToggleSettings))
		p, ok := s.Nav.Take()
		require.True(t, ok)
		assert.Equal(t, "/settings", p)

		assert.False(t, s.RunShortcut(ctx, "unknown"))
	})
}

func TestRunShortcut_CloseOthersOnPageWithoutTab(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})
	s := m.Create(context.Background())

	s.Do(func(s *Session) {
		s.Shell.OnNavigationEnd("/dashboard")
		s.Shell.OnNavigationEnd("/deals")
		s.Shell.OnNavigationEnd("/nowhere")

		require.True(t, s.RunShortcut(context.Background(), keys.ActionCloseOtherTabs))
		assert.Len(t, s.Tabs.Tabs(), 2)
	})
}

func TestReaper_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewManager(Options{Routes: testRoutes(), IdleTimeout: time.Millisecond})
	r, err := NewReaper(m, "@every 1s", nil)
	require.NoError(t, err)

	r.Start()
	assert.False(t, r.Next().IsZero())
	r.Stop()
}

func TestReaper_InvalidSchedule(t *testing.T) {
	t.Parallel()
	_, err := NewReaper(NewManager(Options{}), "every so often", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sweep schedule")
}
