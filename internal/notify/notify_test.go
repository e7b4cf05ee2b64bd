package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wajeht/bang/internal/logger"
)

func TestSendPostsPayload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := New(srv.URL, time.Second, logger.New("error", false))
	n.Send(context.Background(), "Error adding bookmark", "fetch timed out")

	if got.Message != "Error adding bookmark" || got.Details != "fetch timed out" {
		t.Errorf("payload = %+v", got)
	}
}

func TestSendDisabledAndFailing(t *testing.T) {
	// Unconfigured and nil notifiers are no-ops.
	New("", time.Second, logger.New("error", false)).Send(context.Background(), "m", "")
	var n *Notifier
	n.Send(context.Background(), "m", "")

	// Unreachable webhook must not panic or return anything.
	n = New("http://127.0.0.1:1/hook", 50*time.Millisecond, logger.New("error", false))
	n.Send(context.Background(), "m", "d")
}
