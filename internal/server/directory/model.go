// Package directory holds the stub server's user directory: the records, an
// in-memory store and the service the HTTP API calls into.
package directory

import "errors"

type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Patch is a partial update; nil fields are left alone.
type Patch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (p Patch) apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// Page mirrors the paginated list answer.
type Page struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

var (
	ErrMissingEmail    = errors.New("missing email or username")
	ErrMissingPassword = errors.New("missing password")
	ErrUserNotFound    = errors.New("user not found")
)
