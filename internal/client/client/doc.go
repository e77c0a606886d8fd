// Package client talks to the Time Report service.
//
// It provides the Client contract used by the services and workspace layers,
// its gRPC implementation (GRPCClient) and the bootstrap of the local SQLite
// database that keeps the session between runs (InitDatabase, RunMigrations).
//
// gRPC status codes are folded into sentinel errors matched with errors.Is:
// ErrUnauthorized, ErrNoAccess, ErrUnavailable. Login and registration
// failures that are not transport problems come back as *AuthError with the
// service message untouched.
package client
