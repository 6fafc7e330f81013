// Package cli provides the interactive userdeck console.
//
// It wires configuration, the session store, the directory API client and an
// interactive REPL. Typical flow: log in, browse pages of users, search the
// loaded page, edit or delete a user, log out.
//
// Commands once logged in:
//   - list / page N / next / prev / refresh
//   - search [term]
//   - edit ID / delete ID
//   - whoami / logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
