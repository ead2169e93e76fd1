// Package utils provides shared utility functions used across the application.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a new UUID v4 string for use as an entity identifier.
// UUIDs can be generated without coordination (no central counter), which
// keeps the store free of sequence bookkeeping.
func GenerateID() string {
	return uuid.New().String()
}
