package store

import (
	"context"
	"errors"
)

// Storage keys shared by the services. They mirror the record names the
// FutureX client has always written, so an existing data file stays usable.
const (
	// KeySession holds the currently signed-in account, or is absent.
	KeySession = "futurex_user"
	// KeyDirectory holds the full account list.
	KeyDirectory = "futurex_all_users"
	// KeyReviews holds the full review list.
	KeyReviews = "futurex_reviews"
)

var (
	ErrNotFound           = errors.New("store: not found")
	ErrStorageFull        = errors.New("store: storage full")
	ErrStorageUnavailable = errors.New("store: storage unavailable")
)

// Store is durable client-local key-value storage. Values are JSON documents;
// a save either fully replaces the previous value or fails, nothing in
// between is ever observable. The client is single-threaded so drivers need
// no locking discipline beyond that.
type Store interface {
	// Save serializes value as JSON and writes it under key, replacing any
	// previous value. Reports ErrStorageFull when the medium rejects the
	// write for space, ErrStorageUnavailable for anything else.
	Save(ctx context.Context, key string, value any) error

	// Load reads key and decodes the stored JSON into dest. An absent key
	// and a value that no longer decodes both report ErrNotFound.
	Load(ctx context.Context, key string, dest any) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// ApplyMigrations brings the underlying schema up to date.
	ApplyMigrations() error

	// Ping verifies the underlying medium is still reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
