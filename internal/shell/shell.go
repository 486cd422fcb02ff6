// Package shell coordinates the application chrome of one client: the
// active workspace, side navigation, settings mode and the tab and split
// view state that hang off navigation events.
package shell

import (
	"log/slog"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
	"dwex-demo/internal/shell/splitview"
	"dwex-demo/internal/shell/tabs"
)

// Side navigation widths in pixels.
const (
	SidenavCompactWidth  = 72
	SidenavExpandedWidth = 240
)

// MobileBreakpoint is the media query that switches to the mobile layout.
const MobileBreakpoint = "(max-width: 768px)"

// Config is the static shell configuration.
type Config struct {
	Workspaces    []domain.Workspace
	SettingsNav   []domain.NavItem
	SettingsRoute string
	ProfileRoute  string
	EnableTabs    bool
}

// Modifiers are the modifier keys held during a click.
type Modifiers struct {
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// Shell is the chrome state of one client. Callers serialize access.
type Shell struct {
	nav    domain.Navigator
	tabs   *tabs.Service
	split  *splitview.Service
	logger *slog.Logger

	workspaces    []domain.Workspace
	settingsNav   []domain.NavItem
	settingsRoute string
	profileRoute  string

	activeWorkspaceID string
	sidenavState      domain.SidenavState
	mobileNavOpen     bool
	showCompact       bool
	isMobile          bool
	offline           bool
	currentURL        string
	previousRoute     string
}

// New creates a Shell and registers every configured route with the tab
// service.
func New(cfg Config, nav domain.Navigator, t *tabs.Service, split *splitview.Service, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SettingsRoute == "" {
		cfg.SettingsRoute = "/settings"
	}
	if cfg.ProfileRoute == "" {
		cfg.ProfileRoute = "/profile"
	}
	s := &Shell{
		nav:           nav,
		tabs:          t,
		split:         split,
		logger:        logger,
		settingsRoute: cfg.SettingsRoute,
		profileRoute:  cfg.ProfileRoute,
		sidenavState:  domain.SidenavExpanded,
		currentURL:    "/",
		previousRoute: "/",
	}
	t.SetEnabled(cfg.EnableTabs)
	s.SetWorkspaces(cfg.Workspaces, cfg.SettingsNav)
	return s
}

// Tabs returns the tab service.
func (s *Shell) Tabs() *tabs.Service { return s.tabs }

// Split returns the split view service.
func (s *Shell) Split() *splitview.Service { return s.split }

// SetWorkspaces replaces the workspace configuration and rebuilds the tab
// registry. The active workspace is kept when it still exists.
func (s *Shell) SetWorkspaces(workspaces []domain.Workspace, settingsNav []domain.NavItem) {
	s.workspaces = workspaces
	s.settingsNav = settingsNav

	var all []domain.NavItem
	for _, ws := range workspaces {
		all = append(all, ws.NavItems...)
	}
	all = append(all, settingsNav...)
	s.tabs.ReplaceRegistry(all)

	if s.IsSettingsActive() && s.activeWorkspaceID == "" {
		return
	}
	if _, ok := s.workspace(s.activeWorkspaceID); !ok {
		s.activeWorkspaceID = s.firstWorkspaceID()
	}
}

// Workspaces returns the full workspace configuration.
func (s *Shell) Workspaces() []domain.Workspace { return s.workspaces }

// SettingsNav returns the settings nav items.
func (s *Shell) SettingsNav() []domain.NavItem { return s.settingsNav }

// OnNavigationEnd records a completed navigation to url (after redirects).
func (s *Shell) OnNavigationEnd(url string) {
	s.currentURL = url
	if s.tabs.Enabled() {
		s.tabs.ActivateOrOpen(url)
	}
	if s.underSettings(url) {
		s.activeWorkspaceID = ""
		return
	}
	s.previousRoute = url
	for _, ws := range s.workspaces {
		if !workspaceOwns(ws, url) {
			continue
		}
		if ws.ID != s.activeWorkspaceID {
			s.logger.Debug("workspace auto-switch", "from", s.activeWorkspaceID, "to", ws.ID, "url", url)
			s.activeWorkspaceID = ws.ID
		}
		return
	}
}

func workspaceOwns(ws domain.Workspace, url string) bool {
	for _, item := range ws.NavItems {
		if router.UnderPrefix(url, item.Route) {
			return true
		}
	}
	return false
}

// ToggleSidenav opens or closes the mobile drawer, or on desktop cycles
// expanded, compact and collapsed.
func (s *Shell) ToggleSidenav() {
	if s.isMobile {
		s.mobileNavOpen = !s.mobileNavOpen
		return
	}
	switch s.sidenavState {
	case domain.SidenavExpanded:
		s.showCompact = true
		s.sidenavState = domain.SidenavCompact
	case domain.SidenavCompact:
		s.sidenavState = domain.SidenavCollapsed
	default:
		s.showCompact = false
		s.sidenavState = domain.SidenavExpanded
	}
}

// CloseMobileNav closes the mobile drawer.
func (s *Shell) CloseMobileNav() { s.mobileNavOpen = false }

// SidenavWidth returns the side navigation width in pixels.
func (s *Shell) SidenavWidth() int {
	if s.isMobile || s.sidenavState == domain.SidenavCollapsed || !s.hasMultipleNavItems() {
		return 0
	}
	if s.sidenavState == domain.SidenavCompact {
		return SidenavCompactWidth
	}
	return SidenavExpandedWidth
}

func (s *Shell) hasMultipleNavItems() bool {
	n := 0
	for _, item := range s.CurrentNavItems() {
		if !item.Section {
			n++
		}
	}
	return n > 1
}

// SwitchWorkspace selects workspace id. Leaving settings mode returns to the
// last page outside settings first.
func (s *Shell) SwitchWorkspace(id string) {
	if s.IsSettingsActive() {
		s.nav.Navigate(s.returnRoute())
	}
	s.activeWorkspaceID = id
}

// ToggleSettings enters or leaves settings mode.
func (s *Shell) ToggleSettings() {
	if s.IsSettingsActive() {
		s.nav.Navigate(s.returnRoute())
		s.activeWorkspaceID = s.firstWorkspaceID()
		return
	}
	s.activeWorkspaceID = ""
	s.nav.Navigate(s.settingsRoute)
}

func (s *Shell) returnRoute() string {
	if s.underSettings(s.previousRoute) {
		return "/"
	}
	return s.previousRoute
}

// NavigateToProfile leaves the current workspace and opens the profile page.
func (s *Shell) NavigateToProfile() {
	s.activeWorkspaceID = ""
	s.nav.Navigate(s.profileRoute)
}

// IsActive reports whether route matches the current URL exactly or as a
// path prefix. The empty route is never active.
func (s *Shell) IsActive(route string) bool {
	return router.UnderPrefix(s.currentURL, route)
}

// NavItemClick handles a click on a nav item. Ctrl or Cmd clicks open the
// item in a vertical split and report true; other clicks are left to normal
// navigation.
func (s *Shell) NavItemClick(item domain.NavItem, mods Modifiers) bool {
	if !mods.Ctrl && !mods.Meta {
		return false
	}
	if item.Route != "" {
		s.split.OpenRoute(item.Route, domain.SplitVertical)
	}
	return true
}

// OpenInSplit opens item's route in the split view.
func (s *Shell) OpenInSplit(item domain.NavItem, orientation domain.SplitOrientation) {
	if item.Route == "" {
		return
	}
	s.split.OpenRoute(item.Route, orientation)
}

// SetMobile records the breakpoint state.
func (s *Shell) SetMobile(mobile bool) {
	s.isMobile = mobile
	if !mobile {
		s.mobileNavOpen = false
	}
}

// VisibleWorkspaces returns the workspaces shown at the current breakpoint.
func (s *Shell) VisibleWorkspaces() []domain.Workspace {
	out := make([]domain.Workspace, 0, len(s.workspaces))
	for _, ws := range s.workspaces {
		if ws.ShowOn.Visible(s.isMobile) {
			out = append(out, ws)
		}
	}
	return out
}

// CurrentNavItems returns the nav items shown at the current breakpoint:
// settings items in settings mode, else the active (or first visible)
// workspace's items.
func (s *Shell) CurrentNavItems() []domain.NavItem {
	if s.IsSettingsActive() {
		return s.filterNav(s.settingsNav)
	}
	visible := s.VisibleWorkspaces()
	if len(visible) == 0 {
		return nil
	}
	active := visible[0]
	for _, ws := range visible {
		if ws.ID == s.activeWorkspaceID {
			active = ws
			break
		}
	}
	return s.filterNav(active.NavItems)
}

func (s *Shell) filterNav(items []domain.NavItem) []domain.NavItem {
	out := make([]domain.NavItem, 0, len(items))
	for _, item := range items {
		if item.ShowOn.Visible(s.isMobile) {
			out = append(out, item)
		}
	}
	return out
}

// ActiveWorkspaceID is empty in settings and profile mode.
func (s *Shell) ActiveWorkspaceID() string { return s.activeWorkspaceID }

// ActiveWorkspace returns the selected workspace.
func (s *Shell) ActiveWorkspace() (domain.Workspace, bool) {
	return s.workspace(s.activeWorkspaceID)
}

func (s *Shell) workspace(id string) (domain.Workspace, bool) {
	if id == "" {
		return domain.Workspace{}, false
	}
	for _, ws := range s.workspaces {
		if ws.ID == id {
			return ws, true
		}
	}
	return domain.Workspace{}, false
}

func (s *Shell) firstWorkspaceID() string {
	if visible := s.VisibleWorkspaces(); len(visible) > 0 {
		return visible[0].ID
	}
	if len(s.workspaces) > 0 {
		return s.workspaces[0].ID
	}
	return ""
}

// IsSettingsActive reports whether the current URL is in the settings area.
func (s *Shell) IsSettingsActive() bool { return s.underSettings(s.currentURL) }

func (s *Shell) underSettings(url string) bool {
	return router.UnderPrefix(url, s.settingsRoute)
}

// SidenavState returns the desktop side navigation state.
func (s *Shell) SidenavState() domain.SidenavState { return s.sidenavState }

// ShowCompact reports whether nav items render icon-only.
func (s *Shell) ShowCompact() bool { return s.showCompact }

// MobileNavOpen reports whether the mobile drawer is open.
func (s *Shell) MobileNavOpen() bool { return s.mobileNavOpen }

// IsMobile reports the last breakpoint state set by SetMobile.
func (s *Shell) IsMobile() bool { return s.isMobile }

// CurrentURL returns the URL of the last completed navigation.
func (s *Shell) CurrentURL() string { return s.currentURL }

// PreviousRoute returns the last URL visited outside settings.
func (s *Shell) PreviousRoute() string { return s.previousRoute }

// SettingsRoute returns the settings root route.
func (s *Shell) SettingsRoute() string { return s.settingsRoute }

// ProfileRoute returns the profile page route.
func (s *Shell) ProfileRoute() string { return s.profileRoute }

// SetOnline records the client's network status.
func (s *Shell) SetOnline(online bool) {
	if online == !s.offline {
		return
	}
	s.offline = !online
	s.logger.Debug("network status changed", "online", online)
}

// IsOnline reports the last network status the client sent. Clients are
// online until they report otherwise.
func (s *Shell) IsOnline() bool { return !s.offline }
