// Package client contains the console's side of the directory API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     ListUsers, UpdateUser and DeleteUser.
//  2. An HTTP implementation (see HTTPClient) that attaches the current
//     credential from a TokenSource to every authenticated call, tags each
//     request with an X-Request-ID and maps HTTP failures to errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     optional session database, applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx answers are returned as
// *APIError, which carries the server's "error" text and matches
// ErrUnauthorized, ErrNotFound or ErrUnavailable with errors.Is depending on
// the status code.
//
// All operations accept context.Context and honor cancellation.
package client
