package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/canteiro-app/canteiro/internal/db"
	"github.com/canteiro-app/canteiro/internal/domain"
)

// SQLiteRequisitionRepo implements RequisitionRepo using a SQLite database.
type SQLiteRequisitionRepo struct {
	db db.DBTX
}

func NewSQLiteRequisitionRepo(conn db.DBTX) *SQLiteRequisitionRepo {
	return &SQLiteRequisitionRepo{db: conn}
}

const requisitionColumns = `id, external_id, material, unit, quantity, need_date, supplier, created_at`

func (r *SQLiteRequisitionRepo) Save(ctx context.Context, q *domain.Requisition) error {
	query := `INSERT OR REPLACE INTO requisitions (` + requisitionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.ExternalID,
		q.Material,
		q.Unit,
		q.Quantity,
		nullableTimeToString(q.NeedDate),
		q.Supplier,
		formatTime(q.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving requisition: %w", err)
	}
	return nil
}

func (r *SQLiteRequisitionRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.Requisition, error) {
	if externalID == "" {
		return nil, fmt.Errorf("requisition with empty external id: %w", ErrNotFound)
	}
	query := `SELECT ` + requisitionColumns + ` FROM requisitions WHERE external_id = ?`
	q, err := r.populate(r.db.QueryRowContext(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("requisition: %w", ErrNotFound)
		}
		return nil, err
	}
	return q, nil
}

// List returns requisitions ordered by need date, undated ones last.
func (r *SQLiteRequisitionRepo) List(ctx context.Context) ([]domain.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions
		ORDER BY need_date IS NULL, need_date, material`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing requisitions: %w", err)
	}
	defer rows.Close()

	var out []domain.Requisition
	for rows.Next() {
		q, err := r.populate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requisitions: %w", err)
	}
	return out, nil
}

func (r *SQLiteRequisitionRepo) populate(row rowScanner) (*domain.Requisition, error) {
	var q domain.Requisition
	var needDate sql.NullString
	var createdAt string

	err := row.Scan(&q.ID, &q.ExternalID, &q.Material, &q.Unit, &q.Quantity, &needDate, &q.Supplier, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning requisition: %w", err)
	}
	q.NeedDate = parseNullableTime(needDate)
	q.CreatedAt = parseTime(createdAt)
	return &q, nil
}
