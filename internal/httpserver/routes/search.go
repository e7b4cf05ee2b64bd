package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wajeht/bang/internal/httpserver/deps"
	"github.com/wajeht/bang/internal/httpserver/handlers"
	"github.com/wajeht/bang/internal/httpserver/mw"
)

func init() { Register(registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	h := handlers.Search(d)
	sr := r.With(mw.Session(d.SessionTTL), mw.Auth(d.DB, d.Logger))
	sr.Get("/", h)
	sr.Post("/search", h)
}
