package domain

import "time"

// User is the authenticated caller record supplied by the identity layer.
// The engine only reads it; user rows are managed elsewhere.
type User struct {
	ID                    int64
	Email                 string
	DefaultSearchProvider string // key into the provider table, e.g. "google"
	CreatedAt             time.Time
}

// Provider returns the user's search provider key, defaulting to DuckDuckGo.
func (u *User) Provider() string {
	if u == nil || u.DefaultSearchProvider == "" {
		return DefaultProvider
	}
	return u.DefaultSearchProvider
}
