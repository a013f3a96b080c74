// Package cli provides the interactive usermanager command-line client.
//
// It reads credentials from the terminal, keeps the session token in the
// gRPC client and runs a small REPL over the user API: registration, login,
// lookups, listings, password change, deletion and restore.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
