package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wajeht/bang/internal/domain"
)

// FindUserByAPIKey resolves an API key to a user record. Returns (nil, nil)
// for unknown keys so the caller falls back to the anonymous flow.
func (s *Store) FindUserByAPIKey(ctx context.Context, apiKey string) (*domain.User, error) {
	if apiKey == "" {
		return nil, nil
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, default_search_provider, created_at
		FROM users WHERE api_key = ?`, apiKey)

	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.DefaultSearchProvider, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by api key: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a user row. Used by provisioning and tests.
func (s *Store) CreateUser(ctx context.Context, email, apiKey, provider string) (*domain.User, error) {
	if provider == "" {
		provider = domain.DefaultProvider
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, api_key, default_search_provider)
		VALUES (?, ?, ?)`, email, apiKey, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read created user id: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, default_search_provider, created_at
		FROM users WHERE id = ?`, id)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.DefaultSearchProvider, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return &u, nil
}
