package entity

import (
	"strings"

	"github.com/google/uuid"
)

// NewID genera un identificador opaco con prefijo legible (prod_, mov_, ...),
// como los que consume el frontend: prefijo + 12 hex de un UUID v4.
func NewID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}
