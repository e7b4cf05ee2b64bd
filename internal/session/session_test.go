package session

import (
	"context"
	"testing"
	"time"
)

func TestTrackMonotonic(t *testing.T) {
	st := State{}

	var prevCount int
	var prevDelay time.Duration
	for i := 1; i <= 200; i++ {
		st = st.Track()

		if st.SearchCount != prevCount+1 {
			t.Fatalf("search %d: SearchCount = %d, want %d", i, st.SearchCount, prevCount+1)
		}
		if st.CumulativeDelay < prevDelay {
			t.Fatalf("search %d: CumulativeDelay decreased: %v -> %v", i, prevDelay, st.CumulativeDelay)
		}
		prevCount = st.SearchCount
		prevDelay = st.CumulativeDelay
	}

	// 200 searches: the 140 past the limit each add a full increment.
	want := 140 * DelayIncrement
	if st.CumulativeDelay != want {
		t.Errorf("CumulativeDelay after 200 searches = %v, want %v", st.CumulativeDelay, want)
	}
}

func TestTrackDelayStartsPastLimit(t *testing.T) {
	st := State{}
	for i := 0; i < SearchLimit; i++ {
		st = st.Track()
	}
	if st.CumulativeDelay != 0 {
		t.Errorf("delay at exactly the limit = %v, want 0", st.CumulativeDelay)
	}

	st = st.Track()
	if st.CumulativeDelay != DelayIncrement {
		t.Errorf("delay one past the limit = %v, want %v", st.CumulativeDelay, DelayIncrement)
	}

	st = st.Track()
	if st.CumulativeDelay != 2*DelayIncrement {
		t.Errorf("delay accumulates: got %v, want %v", st.CumulativeDelay, 2*DelayIncrement)
	}
}

func TestWarnOnThis(t *testing.T) {
	tests := []struct {
		count int // searches already recorded
		want  bool
	}{
		{0, false},
		{8, false},
		{9, true}, // the 10th search
		{10, false},
		{19, true}, // the 20th
		{29, true},
		{58, false},
		{59, true}, // the 60th
		{60, false},
		{69, true},
	}

	for _, tt := range tests {
		st := State{SearchCount: tt.count}
		if got := st.WarnOnThis(); got != tt.want {
			t.Errorf("WarnOnThis() with count %d = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestSearchesLeft(t *testing.T) {
	if got := (State{}).SearchesLeft(); got != SearchLimit {
		t.Errorf("fresh session SearchesLeft = %d", got)
	}
	if got := (State{SearchCount: 60}).SearchesLeft(); got != 0 {
		t.Errorf("at limit SearchesLeft = %d, want 0", got)
	}
	if got := (State{SearchCount: 70}).SearchesLeft(); got != -10 {
		t.Errorf("past limit SearchesLeft = %d, want -10", got)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	st, err := m.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if st.SearchCount != 0 || st.CumulativeDelay != 0 {
		t.Errorf("unknown session should be zero State, got %+v", st)
	}

	want := State{SearchCount: 3, CumulativeDelay: 10 * time.Second}
	if err := m.Put(ctx, "a", want); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, _ := m.Get(ctx, "a")
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	now := time.Now()
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	ctx := context.Background()
	_ = m.Put(ctx, "old", State{SearchCount: 1})

	// Advance past both the idle TTL and the sweep interval; the next write
	// triggers the sweep.
	now = now.Add(defaultIdleTTL + time.Hour)
	_ = m.Put(ctx, "fresh", State{SearchCount: 1})

	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (idle session swept)", m.Len())
	}
	if st, _ := m.Get(ctx, "old"); st.SearchCount != 0 {
		t.Error("idle session should be gone")
	}
}

func TestTracker(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	tr := NewTracker(m)

	for i := 0; i < 5; i++ {
		if err := tr.Track(ctx, "s1"); err != nil {
			t.Fatalf("Track error: %v", err)
		}
	}

	st, _ := m.Get(ctx, "s1")
	if st.SearchCount != 5 {
		t.Errorf("SearchCount = %d, want 5", st.SearchCount)
	}
}
