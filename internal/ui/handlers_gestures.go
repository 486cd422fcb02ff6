package ui

import (
	"net/http"
	"net/url"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/session"
	"dwex-demo/internal/shell"
	"dwex-demo/internal/shell/keys"
	"dwex-demo/internal/shell/splitview"
)

// Tabs.

func (h *Handler) TabActivate() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		route, err := formRoute(form, "route")
		if err != nil {
			return err
		}
		s.Tabs.Activate(route)
		return nil
	})
}

func (h *Handler) TabClose() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		route, err := formRoute(form, "route")
		if err != nil {
			return err
		}
		s.Tabs.Close(route)
		return nil
	})
}

func (h *Handler) TabCloseOthers() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		route, err := formRoute(form, "route")
		if err != nil {
			return err
		}
		s.Tabs.CloseOthers(route)
		return nil
	})
}

func (h *Handler) TabCloseRight() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		route, err := formRoute(form, "route")
		if err != nil {
			return err
		}
		s.Tabs.CloseToRight(route)
		return nil
	})
}

func (h *Handler) TabCloseAll() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Tabs.CloseAll()
		return nil
	})
}

func (h *Handler) TabTogglePin() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		route, err := formRoute(form, "route")
		if err != nil {
			return err
		}
		s.Tabs.TogglePin(route)
		return nil
	})
}

// TabReorder moves a tab within its pinned or unpinned group.
func (h *Handler) TabReorder() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		from, err := formInt(form, "from")
		if err != nil {
			return err
		}
		to, err := formInt(form, "to")
		if err != nil {
			return err
		}
		switch group := formString(form, "group"); group {
		case "pinned":
			s.Tabs.ReorderPinned(from, to)
		case "unpinned", "":
			s.Tabs.ReorderUnpinned(from, to)
		default:
			return domain.ErrValidation("unknown tab group %q", group)
		}
		return nil
	})
}

// Split view.

func (h *Handler) SplitOpen() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		route, err := formRoute(form, "route")
		if err != nil {
			return err
		}
		orientation, err := formOrientation(form, "orientation")
		if err != nil {
			return err
		}
		s.Shell.OpenInSplit(domain.NavItem{Route: route}, orientation)
		return nil
	})
}

func (h *Handler) SplitClose() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Split.Close()
		return nil
	})
}

func (h *Handler) SplitOrientation() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		if formString(form, "orientation") == "" {
			return domain.ErrValidation("orientation is required")
		}
		orientation, err := formOrientation(form, "orientation")
		if err != nil {
			return err
		}
		s.Split.SetOrientation(orientation)
		return nil
	})
}

func (h *Handler) SplitToggleOrientation() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Split.ToggleOrientation()
		return nil
	})
}

func (h *Handler) SplitRatio() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		ratio, err := formFloat(form, "ratio")
		if err != nil {
			return err
		}
		s.Split.SetSplitRatio(ratio)
		return nil
	})
}

func (h *Handler) SplitReset() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Split.ResetRatio()
		return nil
	})
}

// SplitDrag applies a completed divider drag: the release point and the
// container box arrive together and the drag ends with the request.
func (h *Handler) SplitDrag() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		var p splitview.Point
		var c splitview.Rect
		for _, f := range []struct {
			key string
			dst *float64
		}{
			{"x", &p.X}, {"y", &p.Y},
			{"left", &c.Left}, {"top", &c.Top}, {"width", &c.Width}, {"height", &c.Height},
		} {
			v, err := formFloat(form, f.key)
			if err != nil {
				return err
			}
			*f.dst = v
		}
		s.Drag.Begin()
		defer s.Drag.End()
		s.Drag.Move(p, c)
		return nil
	})
}

// Shell.

func (h *Handler) ShellToggleSidenav() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Shell.ToggleSidenav()
		return nil
	})
}

func (h *Handler) ShellCloseMobileNav() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Shell.CloseMobileNav()
		return nil
	})
}

func (h *Handler) ShellSwitchWorkspace() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		id := formString(form, "id")
		for _, ws := range s.Shell.Workspaces() {
			if ws.ID == id {
				s.Shell.SwitchWorkspace(id)
				return nil
			}
		}
		return domain.ErrNotFound("workspace %q not found", id)
	})
}

func (h *Handler) ShellToggleSettings() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Shell.ToggleSettings()
		return nil
	})
}

func (h *Handler) ShellProfile() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, _ url.Values) error {
		s.Shell.NavigateToProfile()
		return nil
	})
}

// ShellNavClick handles a nav item click reported with its modifier keys.
// Plain clicks navigate to the item; modified clicks open it in the split
// view and stay on the current page.
func (h *Handler) ShellNavClick() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		route, err := formRoute(form, "route")
		if err != nil {
			return err
		}
		item := domain.NavItem{Route: route}
		for _, candidate := range s.Shell.CurrentNavItems() {
			if candidate.Route == route {
				item = candidate
				break
			}
		}
		mods := shell.Modifiers{
			Ctrl:  formBool(form, "ctrl"),
			Meta:  formBool(form, "meta"),
			Shift: formBool(form, "shift"),
			Alt:   formBool(form, "alt"),
		}
		if !s.Shell.NavItemClick(item, mods) {
			s.Nav.Navigate(route)
		}
		return nil
	})
}

// Env records the client's breakpoint and system color scheme, and its
// network status when the form carries one.
func (h *Handler) Env() http.HandlerFunc {
	return h.mutate(func(_ *http.Request, s *session.Session, form url.Values) error {
		s.Shell.SetMobile(formBool(form, "mobile"))
		s.Theme.SetSystemDark(formBool(form, "dark"))
		if form.Has("online") {
			s.Shell.SetOnline(formBool(form, "online"))
		}
		return nil
	})
}

// Theme.

func (h *Handler) ThemeMode() http.HandlerFunc {
	return h.mutate(func(r *http.Request, s *session.Session, form url.Values) error {
		return s.Theme.SetMode(r.Context(), domain.ThemeMode(formString(form, "mode")))
	})
}

func (h *Handler) ThemeColor() http.HandlerFunc {
	return h.mutate(func(r *http.Request, s *session.Session, form url.Values) error {
		return s.Theme.SetColor(r.Context(), domain.ThemeColor(formString(form, "color")))
	})
}

func (h *Handler) ThemeToggle() http.HandlerFunc {
	return h.mutate(func(r *http.Request, s *session.Session, _ url.Values) error {
		s.Theme.ToggleMode(r.Context())
		return nil
	})
}

// Keys dispatches a keydown to the bound shortcut. Unbound keys are ignored.
func (h *Handler) Keys() http.HandlerFunc {
	return h.mutate(func(r *http.Request, s *session.Session, form url.Values) error {
		ev := keys.Event{
			Key:    formString(form, "key"),
			Ctrl:   formBool(form, "ctrl"),
			Shift:  formBool(form, "shift"),
			Alt:    formBool(form, "alt"),
			Meta:   formBool(form, "meta"),
			Target: formString(form, "target"),
		}
		sc, ok := s.Keys.Match(ev)
		if !ok {
			return nil
		}
		if !s.RunShortcut(r.Context(), sc.Action) {
			h.Logger.Warn("shortcut without handler", "action", sc.Action)
		}
		return nil
	})
}
