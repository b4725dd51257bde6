// Package uuid wraps UUID generation behind a single function.
package uuid

import "github.com/google/uuid"

// New returns a random UUID string.
func New() string {
	return uuid.NewString()
}
