// Package tabs provides the open-tab coordinator: tab lifecycle on
// navigation, pinning, reordering and close-neighbor selection.
package tabs

import (
	"log/slog"

	"dwex-demo/internal/domain"
)

// DefaultMaxVisibleTabs is the number of tabs shown before overflow.
const DefaultMaxVisibleTabs = 12

// Service tracks the open tabs of one client. It is not safe for concurrent
// use; the owning session serializes calls.
type Service struct {
	nav    domain.Navigator
	logger *slog.Logger

	registry    map[string]domain.TabRouteInfo
	tabs        []domain.Tab
	activeRoute string
	enabled     bool
	// keepClosed is the active route whose tab was closed with nothing left
	// to navigate to. The next page view of it must not reopen the tab.
	keepClosed string
}

// NewService creates a tab Service that navigates through nav.
func NewService(nav domain.Navigator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		nav:      nav,
		logger:   logger,
		registry: make(map[string]domain.TabRouteInfo),
		enabled:  true,
	}
}

// RegisterRoutes merges every nav item that has a route into the registry.
// Later items win for the same route.
func (s *Service) RegisterRoutes(items []domain.NavItem) {
	for _, item := range items {
		if item.Route == "" {
			continue
		}
		s.registry[item.Route] = domain.TabRouteInfo{Label: item.Label, Icon: item.Icon}
	}
}

// ClearRegistry forgets every registered route. Open tabs are kept.
func (s *Service) ClearRegistry() {
	s.registry = make(map[string]domain.TabRouteInfo)
}

// ReplaceRegistry clears the registry and registers items in one step.
func (s *Service) ReplaceRegistry(items []domain.NavItem) {
	s.ClearRegistry()
	s.RegisterRoutes(items)
}

// Registered returns the registry entry for route.
func (s *Service) Registered(route string) (domain.TabRouteInfo, bool) {
	info, ok := s.registry[route]
	return info, ok
}

// ActivateOrOpen marks route active and opens a tab for it when the route is
// registered and has no tab yet. The page view that follows closing the last
// tab of route only marks it active.
func (s *Service) ActivateOrOpen(route string) {
	keepClosed := s.keepClosed
	s.keepClosed = ""
	s.activeRoute = route
	if s.indexOf(route) >= 0 {
		return
	}
	if route == keepClosed {
		s.logger.Debug("tab was closed, not reopened", "route", route)
		return
	}
	info, ok := s.registry[route]
	if !ok {
		s.logger.Debug("route not registered, no tab opened", "route", route)
		return
	}
	s.tabs = append(s.tabs, domain.Tab{
		ID:    route,
		Route: route,
		Label: info.Label,
		Icon:  info.Icon,
	})
}

// Activate requests navigation to route. The tab becomes active once the
// navigation completes.
func (s *Service) Activate(route string) {
	s.nav.Navigate(route)
}

// Close removes the unpinned tab for route. Closing the active tab navigates
// to the tab now at the same index, or the last one.
func (s *Service) Close(route string) {
	i := s.indexOf(route)
	if i < 0 {
		s.logger.Debug("close: no tab", "route", route)
		return
	}
	if s.tabs[i].Pinned {
		s.logger.Debug("close: tab is pinned", "route", route)
		return
	}
	wasActive := s.activeRoute == route
	s.tabs = append(s.tabs[:i:i], s.tabs[i+1:]...)
	if !wasActive {
		return
	}
	if len(s.tabs) == 0 {
		s.keepClosed = route
		return
	}
	next := min(i, len(s.tabs)-1)
	s.nav.Navigate(s.tabs[next].Route)
}

// CloseOthers keeps the pinned tabs and the tab for route.
func (s *Service) CloseOthers(route string) {
	if s.indexOf(route) < 0 {
		s.logger.Debug("close others: no tab", "route", route)
		return
	}
	kept := s.tabs[:0:0]
	for _, t := range s.tabs {
		if t.Pinned || t.Route == route {
			kept = append(kept, t)
		}
	}
	s.tabs = kept
	s.navigateIfActiveGone(func() (string, bool) { return s.firstRoute() })
}

// CloseToRight drops unpinned tabs after the tab for route.
func (s *Service) CloseToRight(route string) {
	i := s.indexOf(route)
	if i < 0 {
		s.logger.Debug("close to right: no tab", "route", route)
		return
	}
	kept := s.tabs[:0:0]
	for j, t := range s.tabs {
		if j <= i || t.Pinned {
			kept = append(kept, t)
		}
	}
	s.tabs = kept
	s.navigateIfActiveGone(func() (string, bool) { return route, true })
}

// CloseAll drops every unpinned tab and navigates to the first pinned tab if
// one remains.
func (s *Service) CloseAll() {
	hadActive := s.indexOf(s.activeRoute) >= 0
	kept := s.tabs[:0:0]
	for _, t := range s.tabs {
		if t.Pinned {
			kept = append(kept, t)
		}
	}
	s.tabs = kept
	if route, ok := s.firstRoute(); ok {
		s.nav.Navigate(route)
		return
	}
	if hadActive {
		s.keepClosed = s.activeRoute
	}
}

// TogglePin flips the pinned flag of the tab for route and moves it to the
// matching partition.
func (s *Service) TogglePin(route string) {
	i := s.indexOf(route)
	if i < 0 {
		s.logger.Debug("toggle pin: no tab", "route", route)
		return
	}
	s.tabs[i].Pinned = !s.tabs[i].Pinned
	s.tabs = append(s.PinnedTabs(), s.UnpinnedTabs()...)
}

// ReorderPinned moves a pinned tab between partition-local indices.
func (s *Service) ReorderPinned(from, to int) {
	pinned := moveItem(s.PinnedTabs(), from, to)
	s.tabs = append(pinned, s.UnpinnedTabs()...)
}

// ReorderUnpinned moves an unpinned tab between partition-local indices.
func (s *Service) ReorderUnpinned(from, to int) {
	unpinned := moveItem(s.UnpinnedTabs(), from, to)
	s.tabs = append(s.PinnedTabs(), unpinned...)
}

// Tabs returns a copy of the open tabs in display order.
func (s *Service) Tabs() []domain.Tab {
	out := make([]domain.Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

// PinnedTabs returns the pinned partition in order.
func (s *Service) PinnedTabs() []domain.Tab {
	return s.filter(true)
}

// UnpinnedTabs returns the unpinned partition in order.
func (s *Service) UnpinnedTabs() []domain.Tab {
	return s.filter(false)
}

// ActiveRoute returns the route of the last completed navigation.
func (s *Service) ActiveRoute() string { return s.activeRoute }

// ActiveTab returns the tab for the active route, if one is open.
func (s *Service) ActiveTab() (domain.Tab, bool) {
	if i := s.indexOf(s.activeRoute); i >= 0 {
		return s.tabs[i], true
	}
	return domain.Tab{}, false
}

// Enabled reports whether the tab bar is in use.
func (s *Service) Enabled() bool { return s.enabled }

// SetEnabled turns the tab bar on or off. Open tabs are kept.
func (s *Service) SetEnabled(enabled bool) { s.enabled = enabled }

// MaxVisibleTabs is the overflow threshold for the tab bar.
func (s *Service) MaxVisibleTabs() int { return DefaultMaxVisibleTabs }

func (s *Service) indexOf(route string) int {
	for i, t := range s.tabs {
		if t.Route == route {
			return i
		}
	}
	return -1
}

func (s *Service) filter(pinned bool) []domain.Tab {
	out := make([]domain.Tab, 0, len(s.tabs))
	for _, t := range s.tabs {
		if t.Pinned == pinned {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) firstRoute() (string, bool) {
	if len(s.tabs) == 0 {
		return "", false
	}
	return s.tabs[0].Route, true
}

func (s *Service) navigateIfActiveGone(target func() (string, bool)) {
	if s.indexOf(s.activeRoute) >= 0 {
		return
	}
	if route, ok := target(); ok {
		s.nav.Navigate(route)
	}
}

// moveItem moves list[from] to index to, clamping both to the list bounds.
func moveItem(list []domain.Tab, from, to int) []domain.Tab {
	if len(list) == 0 {
		return list
	}
	from = clamp(from, 0, len(list)-1)
	to = clamp(to, 0, len(list)-1)
	if from == to {
		return list
	}
	item := list[from]
	if from < to {
		copy(list[from:to], list[from+1:to+1])
	} else {
		copy(list[to+1:from+1], list[to:from])
	}
	list[to] = item
	return list
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
