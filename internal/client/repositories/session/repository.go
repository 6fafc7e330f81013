// Package session persists the console credential between runs.
package session

import (
	"context"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
)

// Repository stores at most one credential. Load returns (zero, false, nil)
// when nothing is stored.
type Repository interface {
	Load(ctx context.Context) (models.Credential, bool, error)
	Save(ctx context.Context, cred models.Credential) error
	Clear(ctx context.Context) error
}
