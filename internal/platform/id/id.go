// Package id generates campaign identifiers.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a random UUIDv4 in canonical lowercase form.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return value.String(), nil
}
