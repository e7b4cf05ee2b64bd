// Package session tracks anonymous search activity: a per-session search
// counter and the cumulative rate-limiting delay applied once the free
// search allowance is used up.
package session

import (
	"context"
	"time"
)

const (
	// SearchLimit is the free search allowance for anonymous sessions.
	SearchLimit = 60
	// DelayIncrement is added to the cumulative delay for every search past
	// the allowance.
	DelayIncrement = 5 * time.Second
	// WarnEvery controls the decennial usage warnings (10th, 20th, ...).
	WarnEvery = 10
)

// State is the rate-limit bookkeeping for one anonymous session. The zero
// value is a fresh session.
type State struct {
	SearchCount     int           `json:"search_count"`
	CumulativeDelay time.Duration `json:"cumulative_delay"`
}

// Track returns the state after one more search: the counter always goes
// up, and past the allowance every search adds another full delay
// increment. Both fields are monotonic; nothing ever resets.
func (s State) Track() State {
	s.SearchCount++
	if s.SearchCount > SearchLimit {
		s.CumulativeDelay += DelayIncrement
	}
	return s
}

// WarnOnThis reports whether the search being handled right now (the one
// that will bring the counter to SearchCount+1) lands on a warning turn.
func (s State) WarnOnThis() bool {
	next := s.SearchCount + 1
	return next%WarnEvery == 0 && next != 0
}

// SearchesLeft is the remaining allowance before this search is counted.
// Used for messaging only; may go negative once the limit is exceeded.
func (s State) SearchesLeft() int {
	return SearchLimit - s.SearchCount
}

// Store persists session state keyed by an opaque session ID. Get returns
// the zero State for unknown IDs.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Put(ctx context.Context, id string, st State) error
}

// Tracker applies the per-search bookkeeping against a Store. It is what
// the background usage-tracking queue runs.
type Tracker struct {
	store Store
}

// NewTracker creates a Tracker on top of a session store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Track records one search for the given session.
func (t *Tracker) Track(ctx context.Context, id string) error {
	st, err := t.store.Get(ctx, id)
	if err != nil {
		return err
	}
	return t.store.Put(ctx, id, st.Track())
}
