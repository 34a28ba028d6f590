package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateEntityID creates a short, human-readable identifier.
// Format: {kind}-{slug(name)}-{8charHexUUID}
//
// Example:
//   - Input: kind="staff", name="Maya Chen"
//   - Output: "staff-maya-chen-a3f8e2b1"
func GenerateEntityID(kind, name string) string {
	return EntityID(kind, name, uuid.New())
}

// EntityID builds the same format as GenerateEntityID from a caller-supplied
// UUID, so seeded generators stay reproducible.
func EntityID(kind, name string, id uuid.UUID) string {
	suffix := shortUUID(id)
	slug := Slugify(name)
	if slug == "" {
		return kind + "-" + suffix
	}
	return kind + "-" + slug + "-" + suffix
}

// Slugify lower-cases a display name and joins its alphanumeric runs with hyphens.
//   - "Maya Chen" -> "maya-chen"
//   - "  Neon   Nights!! " -> "neon-nights"
func Slugify(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}

// shortUUID keeps the first 8 hex characters of a UUID.
func shortUUID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
