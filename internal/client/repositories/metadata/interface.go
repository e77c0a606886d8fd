// Package metadata persists small key/value pairs in the local SQLite
// database. The client keeps its session there between runs.
package metadata

import "context"

type Repository interface {
	// Get reports ok=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany upserts every pair. Run it inside dbx.WithTx for atomicity.
	SetMany(ctx context.Context, pairs map[string][]byte) error
	Clear(ctx context.Context) error
}
