package services

import (
	"errors"

	"github.com/dmitrijs2005/userdeck/internal/client/client"
)

// Fallback texts shown when the server gives no error message.
const (
	MsgLoginFailed  = "Login failed. Please try again."
	MsgFetchFailed  = "Failed to fetch users"
	MsgUpdateFailed = "Failed to update user"
	MsgDeleteFailed = "Failed to delete user"

	MsgUserUpdated = "User updated successfully"
	MsgUserDeleted = "User deleted successfully"
)

// ErrNoMorePages is returned by NextPage/PrevPage at the ends of the collection.
var ErrNoMorePages = errors.New("no more pages")

// Mutation operations carried by MutationError.
const (
	OpUpdate = "update"
	OpDelete = "delete"
)

// AuthError is a failed login. Message is safe to show to the operator.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// FetchError is a failed page load. The previously loaded page is kept.
type FetchError struct {
	Page    int
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }
func (e *FetchError) Unwrap() error { return e.Err }

// MutationError is a failed update or delete. Local users are left untouched.
type MutationError struct {
	Op      string
	UserID  int
	Message string
	Err     error
}

func (e *MutationError) Error() string { return e.Message }
func (e *MutationError) Unwrap() error { return e.Err }

// displayMessage prefers the text the server sent over the fallback.
func displayMessage(err error, fallback string) string {
	if msg, ok := client.RemoteMessage(err); ok {
		return msg
	}
	return fallback
}
