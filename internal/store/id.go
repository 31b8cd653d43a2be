package store

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a session id: the first 12 hex characters of a fresh
// UUIDv4 (dashes stripped), per §3's data model.
func NewID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:12]
}
