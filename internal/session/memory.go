package session

import (
	"context"
	"sync"
	"time"
)

const (
	defaultIdleTTL       = 24 * time.Hour
	defaultSweepInterval = 10 * time.Minute
)

type memoryEntry struct {
	state    State
	lastSeen time.Time
}

// MemoryStore is an in-process session store. It backs tests and
// deployments without Redis; idle sessions are swept out lazily so the map
// cannot grow without bound.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	idleTTL   time.Duration
	sweepTick time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore creates an in-memory session store with default eviction.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:   make(map[string]memoryEntry),
		idleTTL:   defaultIdleTTL,
		sweepTick: defaultSweepInterval,
		now:       time.Now,
	}
}

// Get returns the state for id, or the zero State when unknown.
func (m *MemoryStore) Get(_ context.Context, id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return State{}, nil
	}
	return e.state, nil
}

// Put stores the state for id and refreshes its idle clock.
func (m *MemoryStore) Put(_ context.Context, id string, st State) error {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[id] = memoryEntry{state: st, lastSeen: now}
	m.sweepLocked(now)
	return nil
}

// sweepLocked drops sessions idle past the TTL, at most once per sweep
// interval. Caller holds the lock.
func (m *MemoryStore) sweepLocked(now time.Time) {
	if now.Sub(m.lastSweep) < m.sweepTick {
		return
	}
	for id, e := range m.entries {
		if now.Sub(e.lastSeen) > m.idleTTL {
			delete(m.entries, id)
		}
	}
	m.lastSweep = now
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
