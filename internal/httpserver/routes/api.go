package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wajeht/bang/internal/httpserver/deps"
	"github.com/wajeht/bang/internal/httpserver/handlers"
	"github.com/wajeht/bang/internal/httpserver/mw"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.With(mw.Auth(d.DB, d.Logger)).Get("/api/bangs", handlers.ListBangs(d))
}
