package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/canteiro-app/canteiro/internal/db"
	"github.com/canteiro-app/canteiro/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

const activityColumns = `id, external_id, title, stage, responsible, module,
	raw_status, status, hours, budget, created_at, updated_at`

// Save inserts a or replaces the row with the same ID.
func (r *SQLiteActivityRepo) Save(ctx context.Context, a *domain.Activity) error {
	module := a.Module
	if module == "" {
		module = domain.DefaultAppModule
	}
	status := a.Status
	if !status.Valid() {
		status = domain.NormalizeStatus(a.RawStatus)
	}

	query := `INSERT OR REPLACE INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ExternalID,
		a.Title,
		a.Stage,
		a.Responsible,
		string(module),
		a.RawStatus,
		string(status),
		a.Hours,
		a.Budget,
		nullableTimeToString(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteActivityRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.Activity, error) {
	if externalID == "" {
		return nil, fmt.Errorf("activity with empty external id: %w", ErrNotFound)
	}
	query := `SELECT ` + activityColumns + ` FROM activities WHERE external_id = ?`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, externalID))
}

// List returns activities ordered by creation time, undated ones last.
func (r *SQLiteActivityRepo) List(ctx context.Context, f ActivityFilter) ([]domain.Activity, error) {
	var where []string
	var args []any
	if f.Module != "" {
		where = append(where, "module = ?")
		args = append(args, string(f.Module))
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}

	query := `SELECT ` + activityColumns + ` FROM activities`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at IS NULL, created_at, title`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		a, err := r.populate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteActivityRepo) scanActivity(row *sql.Row) (*domain.Activity, error) {
	a, err := r.populate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActivityRepo) populate(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var module, status, updatedAt string
	var createdAt sql.NullString

	err := row.Scan(
		&a.ID, &a.ExternalID, &a.Title, &a.Stage, &a.Responsible, &module,
		&a.RawStatus, &status, &a.Hours, &a.Budget, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Module = domain.AppModule(module)
	a.Status = domain.CanonicalStatus(status)
	a.CreatedAt = parseNullableTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return &a, nil
}
