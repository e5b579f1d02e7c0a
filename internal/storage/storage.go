// Package storage provides the durable key-value slot the board and theme
// preferences persist to.
package storage

// Store is a durable string key-value store. There is a single reader and a
// single writer on one goroutine, so implementations need no transaction
// discipline beyond atomic single-key writes.
type Store interface {
	// Get returns the value at key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set writes the value at key, replacing any previous value.
	Set(key, value string) error
}
