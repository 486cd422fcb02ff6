package session

import (
	"context"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
	"dwex-demo/internal/shell/keys"
)

// RunShortcut performs the shell operation bound to action. It must be
// called inside Do. Unknown actions report false.
func (s *Session) RunShortcut(ctx context.Context, action keys.Action) bool {
	active := s.Tabs.ActiveRoute()
	switch action {
	case keys.ActionCloseTab:
		s.Tabs.Close(active)
	case keys.ActionCloseOtherTabs:
		s.Tabs.CloseOthers(active)
	case keys.ActionTogglePin:
		s.Tabs.TogglePin(active)
	case keys.ActionToggleSplit:
		if s.Split.IsActive() {
			s.Split.Close()
		} else {
			s.Split.OpenRoute(router.PathOf(s.Shell.CurrentURL()), domain.SplitVertical)
		}
	case keys.ActionToggleOrientation:
		s.Split.ToggleOrientation()
	case keys.ActionResetRatio:
		s.Split.ResetRatio()
	case keys.ActionToggleSidenav:
		s.Shell.ToggleSidenav()
	case keys.ActionToggleTheme:
		s.Theme.ToggleMode(ctx)
	case keys.ActionToggleSettings:
		s.Shell.ToggleSettings()
	default:
		return false
	}
	return true
}
