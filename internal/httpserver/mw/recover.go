package mw

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/notify"
)

// Recover turns handler panics into 500 responses. The panic is logged with
// its stack and forwarded to the operator webhook.
func Recover(log logger.Logger, n *notify.Notifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered",
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
					logger.String("panic", fmt.Sprintf("%v", rec)),
					logger.String("stack", string(debug.Stack())))

				n.Send(r.Context(), "Unhandled panic",
					fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, rec))

				w.WriteHeader(http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
