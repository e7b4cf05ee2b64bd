package mw

import (
	"net/http"

	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/utils"
)

// RestrictToCIDRs limits a route to specific IPs/CIDRs, used for the
// operator endpoints. An empty list is a passthrough. trustProxy should be
// true when the origin sits behind a trusted reverse proxy or tunnel.
func RestrictToCIDRs(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if !m.Allow(ip) {
				log.Debugf("restricted endpoint rejected ip=%s path=%s", ip, r.URL.Path)
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
