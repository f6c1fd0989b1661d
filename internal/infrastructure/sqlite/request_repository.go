package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/log"
)

// RequestRepository reads and writes catalog records.
type RequestRepository struct {
	db *sql.DB
}

var _ catalog.Source = (*RequestRepository)(nil)

// List implements catalog.Source, newest first.
func (r *RequestRepository) List(ctx context.Context, namespaceID string) ([]catalog.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, namespace, status, created_at, last_modified
		   FROM requests
		  WHERE namespace = ?
		  ORDER BY created_at DESC, id ASC`,
		namespaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	defer rows.Close()

	records := []catalog.Record{}
	for rows.Next() {
		var m requestModel
		if err := rows.Scan(&m.ID, &m.Namespace, &m.Status, &m.CreatedAt, &m.LastModified); err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		rec, err := m.toRecord()
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", m.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	return records, nil
}

// ReplaceNamespace swaps every record of namespaceID for records in one
// transaction.
func (r *RequestRepository) ReplaceNamespace(ctx context.Context, namespaceID string, records []catalog.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM requests WHERE namespace = ?`, namespaceID); err != nil {
		return fmt.Errorf("clearing namespace %s: %w", namespaceID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO requests (id, namespace, status, created_at, last_modified) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if rec.Namespace != namespaceID {
			return fmt.Errorf("record %s belongs to namespace %s, not %s", rec.ID, rec.Namespace, namespaceID)
		}
		m := toRequestModel(rec)
		if _, err := stmt.ExecContext(ctx, m.ID, m.Namespace, m.Status, m.CreatedAt, m.LastModified); err != nil {
			return fmt.Errorf("inserting %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	log.Info(log.CatStore, "replaced namespace", "namespace", namespaceID, "count", len(records))
	return nil
}

// Count returns the number of stored records in namespaceID.
func (r *RequestRepository) Count(ctx context.Context, namespaceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM requests WHERE namespace = ?`, namespaceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting requests: %w", err)
	}
	return n, nil
}
