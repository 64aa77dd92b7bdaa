package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SQLExecutor покрывает *sql.DB и *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Transactor runs fn inside one database transaction. Any error returned by
// fn, or a panic, rolls the whole unit back.
type Transactor interface {
	InTx(ctx context.Context, fn func(exec SQLExecutor) error) error
}

type sqlTransactor struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewTransactor(db *sql.DB, logger *slog.Logger) Transactor {
	if logger == nil {
		logger = slog.Default()
	}
	return &sqlTransactor{db: db, logger: logger}
}

func (t *sqlTransactor) InTx(ctx context.Context, fn func(exec SQLExecutor) error) (txErr error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			t.logger.Warn("rolling back transaction", slog.Any("error", txErr))
			if rbErr := tx.Rollback(); rbErr != nil {
				txErr = fmt.Errorf("transaction processing error: %w (rollback also failed: %v)", txErr, rbErr)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			txErr = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	txErr = fn(tx)
	return txErr
}
