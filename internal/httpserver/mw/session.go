package mw

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "bang_session"

type ctxKey int

const (
	sessionIDKey ctxKey = iota
	userKey
)

// Session assigns every visitor a stable opaque session ID via cookie. The ID
// keys the anonymous rate-limit state and carries no identity.
func Session(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
				id = c.Value
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), sessionIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session ID attached by Session, or "".
func SessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
