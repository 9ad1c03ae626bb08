package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ecollege-api/pkg/database"
)

// inTx runs fn inside a transaction opened on q, rolling back on any error.
func inTx(ctx context.Context, q database.Querier, label string, fn func(tx *sqlx.Tx) error) error {
	tx, err := q.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s tx: %w", label, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s tx: %w", label, err)
	}
	return nil
}
