package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/canteiro-app/canteiro/internal/db"
)

// FailingWriteUoW runs fn in a real transaction but makes the Nth write
// (counting from 1) return Err. Reads are not counted. Used to check that a
// half-finished import leaves nothing behind.
type FailingWriteUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingWriter{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// failingWriter is only used from the goroutine running fn.
type failingWriter struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingWriter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
