package mw

import (
	"context"
	"net/http"

	"github.com/wajeht/bang/internal/domain"
	"github.com/wajeht/bang/internal/logger"
)

// UserFinder resolves an API key to a user. A nil user with nil error means
// the key is unknown.
type UserFinder interface {
	FindUserByAPIKey(ctx context.Context, apiKey string) (*domain.User, error)
}

// Auth attaches the authenticated user to the request context when a valid
// X-API-KEY header is present. Missing or invalid keys degrade to anonymous
// rather than rejecting the request.
func Auth(users UserFinder, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-KEY")
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.FindUserByAPIKey(r.Context(), key)
			if err != nil {
				log.Warn("api key lookup failed, treating as anonymous", logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user, or nil for anonymous requests.
func UserFrom(r *http.Request) *domain.User {
	if u, ok := r.Context().Value(userKey).(*domain.User); ok {
		return u
	}
	return nil
}
