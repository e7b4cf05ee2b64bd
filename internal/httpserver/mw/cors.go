package mw

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS builds the cross-origin policy. With no configured origins the API is
// open (browser extensions set the search engine URL directly); configured
// origins get credentials support for the session cookie.
func CORS(origins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-API-KEY"},
	}
	if len(origins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	} else {
		opts.AllowedOrigins = origins
		opts.AllowCredentials = true
	}
	return cors.New(opts).Handler
}
