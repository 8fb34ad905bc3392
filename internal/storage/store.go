// Package storage provides the client-local key-value store that holds all
// persisted palette state: account lists, the current session, and profile
// blobs. The store is deliberately dumb — namespacing and record shapes are
// the callers' concern.
package storage

import "context"

// Store is an injected capability over namespaced keys.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Delete is idempotent.
//   - Update runs fn against a transaction-bound Store where the backend
//     supports transactions; fn's error rolls the batch back.
//
// The store is shared by every process opening the same database file and has
// no cross-process locking, so read-modify-write sequences composed by
// callers are not atomic between concurrent processes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) (map[string][]byte, error)
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
