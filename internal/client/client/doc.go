// Package client contains the dashboard session's connection to the portal
// server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     authentication, tenant resolution, submission reads and writes, blob
//     upload URLs, the change stream and a liveness check.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via interceptors, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Transport failures surface as ErrUnavailable, authentication failures as
// ErrUnauthorized. Domain refusals map back onto the shared sentinels
// (common.ErrorForbidden, common.ErrorNotFound, common.ErrStaleStatus,
// lifecycle.ErrIllegalTransition) so callers can match with errors.Is.
package client
