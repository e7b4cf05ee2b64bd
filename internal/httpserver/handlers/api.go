package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wajeht/bang/internal/httpserver/deps"
	"github.com/wajeht/bang/internal/httpserver/mw"
	"github.com/wajeht/bang/internal/logger"
)

type apiBang struct {
	Trigger    string    `json:"trigger"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	ActionKind string    `json:"action_kind"`
	UsageCount int64     `json:"usage_count"`
	LastReadAt time.Time `json:"last_read_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListBangs returns the caller's custom bangs. Requires an API key.
func ListBangs(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := mw.UserFrom(r)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "API key required"})
			return
		}

		bangs, err := d.DB.ListCustomBangs(r.Context(), user.ID)
		if err != nil {
			d.Logger.Error("listing custom bangs failed", logger.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}

		out := make([]apiBang, 0, len(bangs))
		for _, b := range bangs {
			out = append(out, apiBang{
				Trigger:    b.Trigger,
				Name:       b.Name,
				URL:        b.URL,
				ActionKind: string(b.Kind),
				UsageCount: b.UsageCount,
				LastReadAt: b.LastReadAt,
				CreatedAt:  b.CreatedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}
