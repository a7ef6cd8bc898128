package middleware

import (
	"context"
	"net/http"

	"github.com/openpharma/pharmafind/internal/application/services"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionMiddleware resolves the caller's session identifier. The cookie
// wins over the header; when neither is present a fresh identifier is
// minted. The identifier is always echoed back on both channels so the
// client can reuse it.
type SessionMiddleware struct {
	sessionService *services.SessionService
	cookieName     string
	headerName     string
	cookieMaxAge   int
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessionService *services.SessionService, cookieName, headerName string, cookieMaxAgeSeconds int) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
		cookieName:     cookieName,
		headerName:     headerName,
		cookieMaxAge:   cookieMaxAgeSeconds,
	}
}

// Middleware wraps the next handler with session identifier propagation
func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var supplied string
		if cookie, err := r.Cookie(m.cookieName); err == nil {
			supplied = cookie.Value
		}
		if supplied == "" {
			supplied = r.Header.Get(m.headerName)
		}

		sessionID := m.sessionService.GetOrCreateID(supplied)

		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   m.cookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(m.headerName, sessionID)

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFromContext returns the session identifier resolved for this
// request, or the empty string when the middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
