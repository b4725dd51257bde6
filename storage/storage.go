// Package storage provides the key-value port for durable client state.
package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store defines the interface for per-installation durable state.
// Production binds it to a bbolt database, tests bind it to an
// in-memory map.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
