// Package kvstore is the persistent string key-value store every hub
// service reads and writes through. Values are opaque: JSON documents,
// data URIs or plain strings.
package kvstore

import "context"

// Store is a synchronous string → string store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set creates or overwrites key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
