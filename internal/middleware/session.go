package middleware

import (
	"net/http"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/session"
)

// SessionCookie names the cookie that carries the client id.
const SessionCookie = "dwex_session"

// Sessions attaches the client's session to the request, creating one (and
// setting the cookie) when the request has none or it expired.
func Sessions(m *session.Manager, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}
			s, created := m.GetOrCreate(r.Context(), id)
			if created || s.ID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := domain.WithClientID(r.Context(), s.ID)
			ctx = session.NewContext(ctx, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
