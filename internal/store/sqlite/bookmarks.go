package sqlite

import (
	"context"
	"fmt"

	"github.com/wajeht/bang/internal/domain"
)

// TitleKind names the record type a title backfill targets.
type TitleKind string

const (
	TitleBookmark TitleKind = "bookmark"
	TitleAction   TitleKind = "action"
	TitleReminder TitleKind = "reminder"
)

// InsertBookmark creates a bookmark row and returns it with its ID set.
func (s *Store) InsertBookmark(ctx context.Context, b domain.Bookmark) (*domain.Bookmark, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (user_id, url, title)
		VALUES (?, ?, ?)`,
		b.UserID, b.URL, b.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bookmark: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted bookmark id: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, url, title, created_at, updated_at
		FROM bookmarks WHERE id = ?`, id)

	var out domain.Bookmark
	if err := row.Scan(&out.ID, &out.UserID, &out.URL, &out.Title, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to load bookmark %d: %w", id, err)
	}
	return &out, nil
}

// UpdateTitle writes a fetched page title to the record it was fetched for.
// For actions (custom bangs) the title lands in the name column.
func (s *Store) UpdateTitle(ctx context.Context, kind TitleKind, id int64, title string) error {
	var query string
	switch kind {
	case TitleBookmark:
		query = `UPDATE bookmarks SET title = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	case TitleAction:
		query = `UPDATE bangs SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	case TitleReminder:
		query = `UPDATE reminders SET title = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	default:
		return fmt.Errorf("unknown title kind %q", kind)
	}

	res, err := s.db.ExecContext(ctx, query, title, id)
	if err != nil {
		return fmt.Errorf("failed to update %s title: %w", kind, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating %s %d title: %w", kind, id, ErrNotFound)
	}
	return nil
}

// ListBookmarks returns a user's bookmarks, newest first.
func (s *Store) ListBookmarks(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, url, title, created_at, updated_at
		FROM bookmarks WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var out []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
