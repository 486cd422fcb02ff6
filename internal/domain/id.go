package domain

import (
	"github.com/google/uuid"
)

// NewID generates a UUIDv7 string for session and client identifiers.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// IsValidID reports whether s parses as a UUID.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
