package ui

import (
	"net/http"

	"dwex-demo/internal/middleware"
)

// SignOut drops the session and its cookie. The theme preference stays
// stored under the old id.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r, false)
}

// Forget drops the session and deletes its stored preferences.
func (h *Handler) Forget(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r, true)
}

func (h *Handler) endSession(w http.ResponseWriter, r *http.Request, forget bool) {
	s, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	// Preferences go first so a failed delete leaves the session intact.
	if forget && h.Preferences != nil {
		if err := h.Preferences.Delete(r.Context(), s.ID); err != nil {
			h.Logger.Error("delete preferences", "session", s.ID, "error", err)
			renderHTML(w, http.StatusInternalServerError, errorPage("Something Went Wrong", "Stored preferences could not be deleted."))
			return
		}
	}
	h.Sessions.Remove(s.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
	})
	h.Logger.Info("session ended", "session", s.ID, "forget", forget)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
