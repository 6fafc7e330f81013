// Package common contains shared constants, sentinel errors and small helpers
// used by both the console and the stub directory server.
package common

// Header names used on every call to the directory API.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
	RequestIDHeaderName     = "X-Request-ID"
	APIKeyHeaderName        = "x-api-key"
)

// DefaultPerPage is the page size the directory API uses when the caller does
// not ask for one.
const DefaultPerPage = 6

// MaxPerPage caps the page size a caller may ask for.
const MaxPerPage = 100
