package ui

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
	"dwex-demo/internal/session"

	gomponents "maragu.dev/gomponents"
)

// Handler serves the shell pages and the gesture endpoints that mutate a
// client's session.
type Handler struct {
	Sessions *session.Manager
	Routes   router.Table
	// Preferences is nil when running without a database.
	Preferences domain.PreferenceRepository
	Logger      *slog.Logger
	Production  bool
}

func NewHandler(
	sessions *session.Manager,
	routes router.Table,
	preferences domain.PreferenceRepository,
	logger *slog.Logger,
	production bool,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Sessions:    sessions,
		Routes:      routes,
		Preferences: preferences,
		Logger:      logger.With("component", "ui"),
		Production:  production,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// currentSession returns the session attached by the session middleware or
// answers 500 when the middleware is missing.
func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		h.Logger.Error("request without session", "path", r.URL.Path)
		renderHTML(w, http.StatusInternalServerError, errorPage("Session Unavailable", "No session is attached to this request."))
		return nil, false
	}
	return s, true
}

// mutation is a gesture applied to the session under its lock.
type mutation func(r *http.Request, s *session.Session, form url.Values) error

// mutate parses the form, applies fn under the session lock and answers 303
// to the page the coordinators asked for, or back to the page the gesture
// came from.
func (h *Handler) mutate(fn mutation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.currentSession(w, r)
		if !ok {
			return
		}
		if err := r.ParseForm(); err != nil {
			renderHTML(w, http.StatusBadRequest, errorPage("Bad Request", "The form could not be read."))
			return
		}

		var (
			err    error
			target string
		)
		s.Do(func(s *session.Session) {
			err = fn(r, s, r.PostForm)
			if next, ok := s.Nav.Take(); ok {
				target = next
				return
			}
			target = returnTarget(r, s.Shell.CurrentURL())
		})
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	switch {
	case errors.As(err, &validation):
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", validation.Message))
	case errors.As(err, &notFound):
		renderHTML(w, http.StatusNotFound, errorPage("Not Found", notFound.Message))
	default:
		h.Logger.Error("gesture failed", "path", r.URL.Path, "error", err)
		renderHTML(w, http.StatusInternalServerError, errorPage("Something Went Wrong", "The request could not be completed."))
	}
}

// returnTarget picks the local page a gesture came from: the return_to form
// field, then the Referer path, then fallback. Only the path and query of a
// Referer are used so a gesture never redirects off-site.
func returnTarget(r *http.Request, fallback string) string {
	if to := strings.TrimSpace(r.PostForm.Get("return_to")); isLocalPath(to) {
		return to
	}
	if ref := r.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && isLocalPath(u.Path) {
			if u.RawQuery != "" {
				return u.Path + "?" + u.RawQuery
			}
			return u.Path
		}
	}
	if isLocalPath(fallback) {
		return fallback
	}
	return "/"
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, `\`)
}
