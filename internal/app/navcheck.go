package app

import (
	"fmt"
	"log/slog"

	"dwex-demo/internal/router"
	"dwex-demo/internal/workspace"
)

// UnresolvedNavRoutes lists the routes referenced by cfg that render no page
// after following redirects. Such nav entries still show up in the side
// navigation but lead to the not-found page.
func UnresolvedNavRoutes(routes router.Table, cfg *workspace.Config) []string {
	var out []string
	check := func(where, route string) {
		if route == "" {
			return
		}
		if _, ok := routes.Lookup(route); !ok {
			out = append(out, fmt.Sprintf("%s: %s", where, route))
		}
	}
	for _, ws := range cfg.Workspaces {
		for _, item := range ws.NavItems {
			if item.Navigable() {
				check("workspace "+ws.ID, item.Route)
			}
		}
	}
	for _, item := range cfg.SettingsNav {
		if item.Navigable() {
			check("settings_nav", item.Route)
		}
	}
	check("settings_route", cfg.SettingsRoute)
	check("profile_route", cfg.ProfileRoute)
	return out
}

func checkNavRoutes(routes router.Table, cfg *workspace.Config, logger *slog.Logger) int {
	unresolved := UnresolvedNavRoutes(routes, cfg)
	for _, u := range unresolved {
		logger.Warn("nav route has no page", "route", u)
	}
	return len(unresolved)
}
