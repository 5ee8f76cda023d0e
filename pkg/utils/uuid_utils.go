package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 returns a time-ordered id, falling back to v4
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ParseUUID parses a canonical (hyphenated, 36 char) UUID; field names the
// value in the returned error.
func ParseUUID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 36 {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", field)
	}
	return id, nil
}
