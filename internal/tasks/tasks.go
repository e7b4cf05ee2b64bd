// Package tasks wires the background queues behind the search engine:
// session counting, bookmark inserts, title backfills and bang usage
// touches, each on its own bounded worker pool.
package tasks

import (
	"context"
	"fmt"

	"github.com/wajeht/bang/internal/domain"
	"github.com/wajeht/bang/internal/fetcher"
	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/notify"
	"github.com/wajeht/bang/internal/queue"
	"github.com/wajeht/bang/internal/session"
	"github.com/wajeht/bang/internal/store/sqlite"
)

type bookmarkTask struct {
	userID int64
	url    string
	title  string
}

type titleTask struct {
	kind sqlite.TitleKind
	id   int64
	url  string
}

// Runner owns the worker pools and implements the engine's Background
// surface. Enqueue methods never block; full queues drop work with a log
// line.
type Runner struct {
	tracking  *queue.Pool[string]
	bookmarks *queue.Pool[bookmarkTask]
	titles    *queue.Pool[titleTask]
	touches   *queue.Pool[int64]
}

func New(
	db *sqlite.Store,
	tracker *session.Tracker,
	fetch *fetcher.TitleFetcher,
	notifier *notify.Notifier,
	width, buffer int,
	log logger.Logger,
) *Runner {
	r := &Runner{}

	r.tracking = queue.New("tracking", width, buffer, func(ctx context.Context, sessionID string) error {
		return tracker.Track(ctx, sessionID)
	}, log)

	r.titles = queue.New("titles", width, buffer, func(ctx context.Context, t titleTask) error {
		title := fetch.FetchPageTitle(ctx, t.url)
		return db.UpdateTitle(ctx, t.kind, t.id, title)
	}, log)

	r.bookmarks = queue.New("bookmarks", width, buffer, func(ctx context.Context, t bookmarkTask) error {
		title := t.title
		if title == "" {
			title = domain.PendingTitle
		}
		created, err := db.InsertBookmark(ctx, domain.Bookmark{
			UserID: t.userID,
			URL:    t.url,
			Title:  title,
		})
		if err != nil {
			notifier.Send(ctx, "Error adding bookmark", fmt.Sprintf("url=%s: %v", t.url, err))
			return err
		}
		if t.title == "" {
			r.titles.Enqueue(titleTask{kind: sqlite.TitleBookmark, id: created.ID, url: t.url})
		}
		return nil
	}, log)

	r.touches = queue.New("touches", width, buffer, func(ctx context.Context, bangID int64) error {
		return db.TouchCustomBang(ctx, bangID)
	}, log)

	return r
}

// Start launches all worker pools.
func (r *Runner) Start(ctx context.Context) {
	r.tracking.Start(ctx)
	r.bookmarks.Start(ctx)
	r.titles.Start(ctx)
	r.touches.Start(ctx)
}

// Stop drains and stops all pools.
func (r *Runner) Stop() {
	r.tracking.Stop()
	r.bookmarks.Stop()
	r.titles.Stop()
	r.touches.Stop()
}

// Pending reports the backlog per queue.
func (r *Runner) Pending() map[string]int {
	return map[string]int{
		"tracking":  r.tracking.Pending(),
		"bookmarks": r.bookmarks.Pending(),
		"titles":    r.titles.Pending(),
		"touches":   r.touches.Pending(),
	}
}

func (r *Runner) TrackSearch(sessionID string) {
	r.tracking.Enqueue(sessionID)
}

func (r *Runner) InsertBookmark(userID int64, url, title string) {
	r.bookmarks.Enqueue(bookmarkTask{userID: userID, url: url, title: title})
}

func (r *Runner) FetchActionTitle(actionID int64, url string) {
	r.titles.Enqueue(titleTask{kind: sqlite.TitleAction, id: actionID, url: url})
}

func (r *Runner) TouchBang(bangID int64) {
	r.touches.Enqueue(bangID)
}
