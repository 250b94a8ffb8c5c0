package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/canteiro-app/canteiro/internal/db"
)

// SQLitePreferenceRepo implements PreferenceRepo using a SQLite database.
type SQLitePreferenceRepo struct {
	db db.DBTX
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(conn db.DBTX) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: conn}
}

func (r *SQLitePreferenceRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("preference %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading preference %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLitePreferenceRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}
