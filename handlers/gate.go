package handlers

import (
	"net/http"
	"time"

	"wayfare/services/sessions"
)

const sessionCookieName = "wayfare_session"

// Gate guards protected routes behind a valid session.
type Gate struct {
	sessions *sessions.Store
}

// NewGate creates an access gate over the given session store.
func NewGate(store *sessions.Store) *Gate {
	return &Gate{sessions: store}
}

// Username resolves the request's session cookie to an account username.
func (g *Gate) Username(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", false
	}
	return g.sessions.Resolve(cookie.Value)
}

// RequirePage redirects unauthenticated requests to the login page before the
// wrapped view runs.
func (g *Gate) RequirePage(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.Username(r); !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// SetSessionCookie binds the session token to the client.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
