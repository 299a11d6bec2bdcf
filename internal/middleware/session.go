package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const sessionCookieName = "rv_session"

const sessionIDKey contextKey = "session_id"

// SessionMiddleware assigns each browser an anonymous view-state session.
// The cookie is not an identity: it only keys the per-tab results, active
// tab, and map overlay held server-side.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFromContext returns the session ID stored by SessionMiddleware.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
