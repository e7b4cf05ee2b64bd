package domain

import "time"

// PendingTitle is the placeholder stored until the background title fetch
// completes.
const PendingTitle = "Fetching title..."

// Bookmark is a saved URL belonging to a user.
type Bookmark struct {
	ID        int64
	UserID    int64
	URL       string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reminder is a dated note pointing at a URL. Only its title backfill is
// relevant to the search engine; CRUD lives elsewhere.
type Reminder struct {
	ID        int64
	UserID    int64
	URL       string
	Title     string
	RemindAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
