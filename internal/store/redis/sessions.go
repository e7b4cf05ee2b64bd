package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wajeht/bang/internal/session"
)

// DefaultSessionTTL is how long an idle anonymous session is kept. Every
// write refreshes it, so the counters only expire for sessions that stopped
// searching.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore persists anonymous search-session state in Redis.
// It implements session.Store.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Get retrieves the session state, returning the zero State for unknown or
// expired sessions.
func (s *SessionStore) Get(ctx context.Context, id string) (session.State, error) {
	data, err := s.client.Get(ctx, SessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.State{}, nil
		}
		return session.State{}, fmt.Errorf("failed to get session: %w", err)
	}

	var st session.State
	if err := json.Unmarshal(data, &st); err != nil {
		return session.State{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return st, nil
}

// Put stores the session state and refreshes its TTL.
func (s *SessionStore) Put(ctx context.Context, id string, st session.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, SessionKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
