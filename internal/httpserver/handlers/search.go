package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wajeht/bang/internal/httpserver/deps"
	"github.com/wajeht/bang/internal/httpserver/mw"
	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/search"
)

// Search resolves the q parameter (query string on GET, form field on POST)
// through the engine. An empty query lands on the search page.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" && r.Method == http.MethodPost {
			if err := r.ParseForm(); err == nil {
				query = strings.TrimSpace(r.PostFormValue("q"))
			}
		}

		if query == "" {
			home(w, d)
			return
		}

		user := mw.UserFrom(r)
		d.Logger.Info("search request",
			logger.String("query", query),
			logger.String("mode", searchMode(user != nil)))

		res := &httpResponder{w: w, r: r}
		err := d.Engine.Resolve(r.Context(), search.Request{
			Res:       res,
			User:      user,
			Query:     query,
			SessionID: mw.SessionID(r),
		})
		if err != nil {
			d.Logger.Error("search resolution failed",
				logger.String("query", query),
				logger.Error(err))
			d.Notifier.Send(r.Context(), "Search resolution failed",
				fmt.Sprintf("%s %s q=%q: %v", r.Method, r.URL.Path, query, err))
			res.SendJSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}
	}
}

func searchMode(authenticated bool) string {
	if authenticated {
		return "authenticated"
	}
	return "anonymous"
}
