package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wajeht/bang/internal/httpserver/deps"
	"github.com/wajeht/bang/internal/httpserver/handlers"
	"github.com/wajeht/bang/internal/httpserver/mw"
)

func init() { Register(registerReload) }

func registerReload(r chi.Router, d deps.Deps) {
	r.With(mw.RestrictToCIDRs(d.AdminCIDRs, d.TrustProxy, d.Logger)).Post("/reload", handlers.Reload(d))
}
