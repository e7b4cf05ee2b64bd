package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wajeht/bang/internal/domain"
)

const customBangColumns = `id, user_id, trigger, name, url, action_kind,
	usage_count, last_read_at, created_at, updated_at`

// scanCustomBang reads one bangs row. last_read_at is selected raw (a
// COALESCE expression has no declared column type, so the driver would hand
// the timestamp back as a string); an unused bang reports created_at instead.
func scanCustomBang(scan func(dest ...any) error) (*domain.CustomBang, error) {
	var b domain.CustomBang
	var kind string
	var lastRead sql.NullTime
	if err := scan(&b.ID, &b.UserID, &b.Trigger, &b.Name, &b.URL, &kind,
		&b.UsageCount, &lastRead, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Kind = domain.ActionKind(kind)
	if lastRead.Valid {
		b.LastReadAt = lastRead.Time
	} else {
		b.LastReadAt = b.CreatedAt
	}
	return &b, nil
}

// FindCustomBang looks up a user's bang by its full trigger (including the
// leading "!"). Returns (nil, nil) when no such bang exists.
func (s *Store) FindCustomBang(ctx context.Context, userID int64, trigger string) (*domain.CustomBang, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+customBangColumns+`
		FROM bangs
		WHERE user_id = ? AND trigger = ?`,
		userID, trigger)

	b, err := scanCustomBang(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find custom bang: %w", err)
	}
	return b, nil
}

// InsertCustomBang creates a new custom bang for a user and returns the
// stored row. A (user, trigger) collision comes back as ErrDuplicateTrigger
// so callers can surface it even when the pre-check raced a concurrent
// insert.
func (s *Store) InsertCustomBang(ctx context.Context, b domain.CustomBang) (*domain.CustomBang, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO bangs (user_id, trigger, name, url, action_kind)
		VALUES (?, ?, ?, ?, ?)`,
		b.UserID, b.Trigger, b.Name, b.URL, string(b.Kind))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTrigger
		}
		return nil, fmt.Errorf("failed to insert custom bang: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted bang id: %w", err)
	}

	return s.findCustomBangByID(ctx, id)
}

func (s *Store) findCustomBangByID(ctx context.Context, id int64) (*domain.CustomBang, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+customBangColumns+`
		FROM bangs
		WHERE id = ?`, id)

	b, err := scanCustomBang(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom bang %d: %w", id, err)
	}
	return b, nil
}

// TouchCustomBang bumps the usage metadata after a dispatch.
func (s *Store) TouchCustomBang(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE bangs
		SET usage_count = usage_count + 1,
		    last_read_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to touch custom bang %d: %w", id, err)
	}
	return nil
}

// ListCustomBangs returns all of a user's bangs, most recently used first.
func (s *Store) ListCustomBangs(ctx context.Context, userID int64) ([]domain.CustomBang, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+customBangColumns+`
		FROM bangs
		WHERE user_id = ?
		ORDER BY usage_count DESC, trigger ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom bangs: %w", err)
	}
	defer rows.Close()

	var out []domain.CustomBang
	for rows.Next() {
		b, err := scanCustomBang(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custom bang: %w", err)
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}
