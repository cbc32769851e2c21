package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/costariann/gye-nyame-hotel/internal/booking"
)

// dbtx is the subset of *sql.DB and *sql.Tx the query methods need,
// letting the same SQL run with or without an open transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles every query against the hotel schema. It satisfies
// booking.Store and the payment package's store interfaces, so the
// services never see *sql.DB directly.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store bound to the given database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle for health checks.
func (s *Store) DB() *sql.DB { return s.db }

// InTx runs fn inside a transaction. The transaction commits only
// when fn returns nil; any error (or panic unwinding) rolls back, so
// no partial write is ever visible to other sessions.
func (s *Store) InTx(ctx context.Context, fn func(booking.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(&TxStore{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

// TxStore exposes the transactional queries of the store. It is only
// handed out by InTx and is invalid once the transaction ends.
type TxStore struct {
	tx *sql.Tx
}
