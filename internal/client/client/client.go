package client

import (
	"context"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
)

// Client is the remote boundary of the console.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	ListUsers(ctx context.Context, page int) (*models.Page, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) error
	DeleteUser(ctx context.Context, id int) error
}

// TokenSource hands out the credential attached to authenticated calls.
type TokenSource interface {
	CurrentCredential() (models.Credential, bool)
}
