package storage

// Store defines the interface for the durable local key-value store.
// Values are opaque strings, the same contract browser localStorage offers.
// This allows swapping between the JSON file and SQLite backends.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set writes value under key, overwriting any prior value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Lifecycle
	Close() error
}
