package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dwex-demo/internal/ui/assets"
)

// MountStatic serves the embedded stylesheet and scripts under /static/.
// Mount it outside the session middleware so asset requests never start a
// session.
func MountStatic(r chi.Router) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err != nil {
		return
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}

// MountRoutes registers the gesture endpoints under /ui and the page
// catch-all. The session middleware must already be installed on r.
func MountRoutes(r chi.Router, h *Handler) {
	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)

		r.Route("/ui", func(r chi.Router) {
			r.Get("/state", h.State)
			r.Get("/routes", h.RoutesJSON)

			r.Post("/tabs/activate", h.TabActivate())
			r.Post("/tabs/close", h.TabClose())
			r.Post("/tabs/close-others", h.TabCloseOthers())
			r.Post("/tabs/close-right", h.TabCloseRight())
			r.Post("/tabs/close-all", h.TabCloseAll())
			r.Post("/tabs/pin", h.TabTogglePin())
			r.Post("/tabs/reorder", h.TabReorder())

			r.Post("/split/open", h.SplitOpen())
			r.Post("/split/close", h.SplitClose())
			r.Post("/split/orientation", h.SplitOrientation())
			r.Post("/split/toggle-orientation", h.SplitToggleOrientation())
			r.Post("/split/ratio", h.SplitRatio())
			r.Post("/split/reset", h.SplitReset())
			r.Post("/split/drag", h.SplitDrag())

			r.Post("/shell/sidenav", h.ShellToggleSidenav())
			r.Post("/shell/mobile-nav/close", h.ShellCloseMobileNav())
			r.Post("/shell/workspace", h.ShellSwitchWorkspace())
			r.Post("/shell/settings", h.ShellToggleSettings())
			r.Post("/shell/profile", h.ShellProfile())
			r.Post("/shell/nav-click", h.ShellNavClick())

			r.Post("/env", h.Env())

			r.Post("/theme/mode", h.ThemeMode())
			r.Post("/theme/color", h.ThemeColor())
			r.Post("/theme/toggle", h.ThemeToggle())

			r.Post("/keys", h.Keys())

			r.Post("/signout", h.SignOut)
			r.Post("/forget", h.Forget)
		})

		r.Get("/*", h.Page)
	})
}
