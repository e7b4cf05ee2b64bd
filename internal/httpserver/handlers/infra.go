package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wajeht/bang/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool           `json:"ok"`
	BangsLoaded *int           `json:"bangs_loaded,omitempty"`
	Mode        string         `json:"mode,omitempty"`
	Impact      string         `json:"impact,omitempty"`
	Pending     map[string]int `json:"pending,omitempty"`
	Error       string         `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the health of each moving part: bang dictionary, database,
// session backend, background queues.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		bangCount := d.Catalog.Len()

		components := map[string]componentStatus{
			"dictionary": {
				OK:          bangCount > 0,
				BangsLoaded: &bangCount,
			},
			"database": checkDatabase(r.Context(), d),
			"sessions": checkSessions(d),
			"queues":   checkQueues(d),
		}

		response := infraResponse{
			Mode:       overallMode(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func overallMode(components map[string]componentStatus) string {
	if db, ok := components["database"]; ok && !db.OK {
		return "critical" // no store = no accounts, no custom bangs
	}
	if dict, ok := components["dictionary"]; ok && !dict.OK {
		return "critical" // no dictionary = bangs fall through to the provider
	}
	if sess, ok := components["sessions"]; ok && sess.Mode == "memory" {
		return "degraded" // rate-limit state lost on restart
	}
	return "ok"
}

func checkDatabase(ctx context.Context, d deps.Deps) componentStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := d.DB.Ping(pingCtx); err != nil {
		return componentStatus{OK: false, Error: err.Error()}
	}
	return componentStatus{OK: true}
}

func checkSessions(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     true,
			Mode:   "memory",
			Impact: "rate-limit state lost on restart",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "redis",
			Impact: "anonymous searches proceed unthrottled",
			Error:  "timeout",
		}
	}
	return componentStatus{OK: true, Mode: "redis"}
}

func checkQueues(d deps.Deps) componentStatus {
	if d.PendingTasks == nil {
		return componentStatus{OK: true}
	}
	return componentStatus{OK: true, Pending: d.PendingTasks()}
}
