// Package cli provides the interactive portal command-line client.
//
// It wires configuration, the local SQLite store, the gRPC API client and
// the dashboard packages behind a small REPL. After sign-in the session's
// role picks the dashboard: clients see their own submissions and can file
// new ones, admins see every tenant and move submissions through the
// lifecycle. Both refresh live while the change feed is up.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
