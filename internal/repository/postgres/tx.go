package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventmanager/internal/domain"
)

// Postgres error codes mapped to domain errors.
const (
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// withTx runs fn inside one transaction. An error from fn rolls back and is returned as-is.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// mapPQError translates constraint violations. Foreign keys only point at events, so 23503 means the
// parent event is gone.
func mapPQError(err error) error {
	var perr *pq.Error
	if !errors.As(err, &perr) {
		return err
	}
	switch perr.Code {
	case pqForeignKeyViolation:
		return domain.NewNotFoundError("event")
	case pqCheckViolation:
		return domain.NewValidationError(perr.Constraint, "violates check constraint")
	}
	return err
}

// lockEvent takes a key-share lock on the parent event so it cannot be deleted before tx commits.
func lockEvent(ctx context.Context, tx *sql.Tx, eventID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR KEY SHARE`, eventID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("event")
		}
		return err
	}
	return nil
}

// execOne runs an UPDATE or DELETE that must touch exactly one row.
func execOne(ctx context.Context, tx *sql.Tx, resource, query string, args ...any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPQError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NewNotFoundError(resource)
	}
	return nil
}
