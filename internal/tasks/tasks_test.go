package tasks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wajeht/bang/internal/domain"
	"github.com/wajeht/bang/internal/fetcher"
	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/notify"
	"github.com/wajeht/bang/internal/session"
	"github.com/wajeht/bang/internal/store/sqlite"
)

func newRunner(t *testing.T) (*Runner, *sqlite.Store, *session.MemoryStore) {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sessions := session.NewMemoryStore()
	log := logger.New("error", false)
	r := New(db, session.NewTracker(sessions), fetcher.NewTitleFetcher(), notify.New("", time.Second, log), 2, 16, log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	r.Start(ctx)
	t.Cleanup(r.Stop)

	return r, db, sessions
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("condition not met in time")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestTrackSearchIncrementsSession(t *testing.T) {
	r, _, sessions := newRunner(t)

	r.TrackSearch("sess-1")
	r.TrackSearch("sess-1")

	waitFor(t, func() bool {
		st, _ := sessions.Get(context.Background(), "sess-1")
		return st.SearchCount == 2
	})
}

func TestInsertBookmarkBackfillsTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>Fetched Title</title></head><body></body></html>"))
	}))
	defer srv.Close()

	r, db, _ := newRunner(t)
	ctx := context.Background()

	user, err := db.CreateUser(ctx, "u@example.com", "key-1", "duckduckgo")
	if err != nil {
		t.Fatal(err)
	}

	r.InsertBookmark(user.ID, srv.URL, "")

	waitFor(t, func() bool {
		bms, err := db.ListBookmarks(ctx, user.ID)
		return err == nil && len(bms) == 1 && bms[0].Title == "Fetched Title"
	})
}

func TestInsertBookmarkKeepsExplicitTitle(t *testing.T) {
	r, db, _ := newRunner(t)
	ctx := context.Background()

	user, err := db.CreateUser(ctx, "u@example.com", "key-1", "duckduckgo")
	if err != nil {
		t.Fatal(err)
	}

	r.InsertBookmark(user.ID, "https://example.com/docs", "My Docs")

	waitFor(t, func() bool {
		bms, err := db.ListBookmarks(ctx, user.ID)
		return err == nil && len(bms) == 1
	})

	bms, _ := db.ListBookmarks(ctx, user.ID)
	if bms[0].Title != "My Docs" {
		t.Errorf("Title = %q, want My Docs", bms[0].Title)
	}
}

func newBangFor(userID int64) domain.CustomBang {
	return domain.CustomBang{
		UserID:  userID,
		Trigger: "!jira",
		Name:    "Jira",
		URL:     "https://jira.example.com",
		Kind:    domain.ActionRedirect,
	}
}

func TestTouchBangBumpsUsage(t *testing.T) {
	r, db, _ := newRunner(t)
	ctx := context.Background()

	user, err := db.CreateUser(ctx, "u@example.com", "key-1", "duckduckgo")
	if err != nil {
		t.Fatal(err)
	}
	bang, err := db.InsertCustomBang(ctx, newBangFor(user.ID))
	if err != nil {
		t.Fatal(err)
	}

	r.TouchBang(bang.ID)

	waitFor(t, func() bool {
		got, err := db.FindCustomBang(ctx, user.ID, bang.Trigger)
		return err == nil && got != nil && got.UsageCount == bang.UsageCount+1
	})
}
