package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateProductCode generates a unique product code
func GenerateProductCode() string {
	return "PROD-" + strings.ToUpper(uuid.New().String()[:8])
}
