package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sportradar/sportradar-cli/internal/dbx"
)

// Storage keys for the two credential values.
const (
	keyAccess  = "access"
	keyRefresh = "refresh"
)

// SQLiteRepository stores the token pair in the local credentials table.
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to store credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Access(ctx context.Context) (string, error) {
	return r.get(ctx, r.db, keyAccess)
}

func (r *SQLiteRepository) Refresh(ctx context.Context) (string, error) {
	return r.get(ctx, r.db, keyRefresh)
}

func (r *SQLiteRepository) SetAccess(ctx context.Context, access string) error {
	return r.set(ctx, r.db, keyAccess, access)
}

func (r *SQLiteRepository) SetPair(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, keyAccess, access); err != nil {
			return err
		}
		return r.set(ctx, tx, keyRefresh, refresh)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
