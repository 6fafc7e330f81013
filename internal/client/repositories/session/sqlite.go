package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
	"github.com/dmitrijs2005/userdeck/internal/dbx"
)

// SQLiteRepository keeps the credential in the single-row session table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (models.Credential, bool, error) {
	var cred models.Credential
	err := r.db.QueryRowContext(ctx, `SELECT identifier, token FROM session WHERE id = 1`).
		Scan(&cred.Identifier, &cred.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, false, nil
	}
	if err != nil {
		return models.Credential{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	return cred, true, nil
}

// Save replaces any stored credential.
func (r *SQLiteRepository) Save(ctx context.Context, cred models.Credential) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO session (id, identifier, token) VALUES (1, ?, ?)`,
			cred.Identifier, cred.Token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
