// Package identity issues the opaque record identifiers used as keys for
// every stored user and artifact.
package identity

import "github.com/google/uuid"

// NewID returns a random 128-bit identifier. Unlike a timestamp-derived
// scheme it stays collision-free under concurrent or same-second calls.
func NewID() string {
	return uuid.New().String()
}
