package ui

import (
	"encoding/json"
	"net/http"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
	"dwex-demo/internal/session"
	"dwex-demo/internal/shell/keys"
	"dwex-demo/internal/shell/splitview"

	. "maragu.dev/gomponents"
)

// Page renders the shell for the requested route. Redirect routes answer
// 302; every rendered page counts as a completed navigation.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(w, r)
	if !ok {
		return
	}

	path := r.URL.Path
	if target := h.Routes.Redirect(path); target != path {
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	match, found := h.Routes.Resolve(path)
	profile := h.Sessions.Workspace().Profile

	var page Node
	s.Do(func(s *session.Session) {
		s.Shell.OnNavigationEnd(path)
		// A page view settles navigation; nothing is left to redirect to.
		s.Nav.Take()
		page = shellPage(pageContext{
			r:       r,
			s:       s,
			profile: profile,
			path:    path,
			query:   r.URL.Query(),
		}, match, found)
	})

	status := http.StatusOK
	if !found {
		status = http.StatusNotFound
		h.Logger.Debug("route not found", "path", path)
	}
	renderHTML(w, status, page)
}

// TabState is the JSON form of one open tab.
type TabState struct {
	Route  string `json:"route"`
	Label  string `json:"label"`
	Icon   string `json:"icon,omitempty"`
	Pinned bool   `json:"pinned"`
}

// StateSnapshot is the JSON view of a session served by State.
type StateSnapshot struct {
	Session         string              `json:"session"`
	CurrentURL      string              `json:"current_url"`
	ActiveWorkspace string              `json:"active_workspace"`
	SettingsActive  bool                `json:"settings_active"`
	Sidenav         domain.SidenavState `json:"sidenav"`
	SidenavWidth    int                 `json:"sidenav_width"`
	Mobile          bool                `json:"mobile"`
	Online          bool                `json:"online"`
	MobileNavOpen   bool                `json:"mobile_nav_open"`
	TabsEnabled     bool                `json:"tabs_enabled"`
	ActiveRoute     string              `json:"active_route"`
	Tabs            []TabState          `json:"tabs"`
	Split           splitview.State     `json:"split"`
	ThemeMode       domain.ThemeMode    `json:"theme_mode"`
	ThemeColor      domain.ThemeColor   `json:"theme_color"`
	ThemeClasses    []string            `json:"theme_classes"`
	ColorScheme     string              `json:"color_scheme"`
	Shortcuts       []keys.Shortcut     `json:"shortcuts"`
}

func snapshot(s *session.Session) StateSnapshot {
	open := s.Tabs.Tabs()
	tabs := make([]TabState, 0, len(open))
	for _, t := range open {
		tabs = append(tabs, TabState{Route: t.Route, Label: t.Label, Icon: t.Icon, Pinned: t.Pinned})
	}
	applied := s.Theme.Applied()
	return StateSnapshot{
		Session:         s.ID,
		CurrentURL:      s.Shell.CurrentURL(),
		ActiveWorkspace: s.Shell.ActiveWorkspaceID(),
		SettingsActive:  s.Shell.IsSettingsActive(),
		Sidenav:         s.Shell.SidenavState(),
		SidenavWidth:    s.Shell.SidenavWidth(),
		Mobile:          s.Shell.IsMobile(),
		Online:          s.Shell.IsOnline(),
		MobileNavOpen:   s.Shell.MobileNavOpen(),
		TabsEnabled:     s.Tabs.Enabled(),
		ActiveRoute:     s.Tabs.ActiveRoute(),
		Tabs:            tabs,
		Split:           s.Split.State(),
		ThemeMode:       s.Theme.Mode(),
		ThemeColor:      s.Theme.Color(),
		ThemeClasses:    applied.Classes,
		ColorScheme:     applied.ColorScheme,
		Shortcuts:       s.Keys.All(),
	}
}

// State serves the session's shell state as JSON.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	var snap StateSnapshot
	s.Do(func(s *session.Session) { snap = snapshot(s) })

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		h.Logger.Warn("encode state", "error", err)
	}
}

// routeJSON is one row of the route listing.
type routeJSON struct {
	Path       string              `json:"path"`
	Title      string              `json:"title,omitempty"`
	Component  domain.ComponentRef `json:"component,omitempty"`
	RedirectTo string              `json:"redirect_to,omitempty"`
}

// RoutesJSON lists the route table.
func (h *Handler) RoutesJSON(w http.ResponseWriter, _ *http.Request) {
	var out []routeJSON
	h.Routes.Walk(func(full string, rt router.Route) {
		out = append(out, routeJSON{Path: "/" + full, Title: rt.Title, Component: rt.Component, RedirectTo: rt.RedirectTo})
	})
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.Logger.Warn("encode routes", "error", err)
	}
}
