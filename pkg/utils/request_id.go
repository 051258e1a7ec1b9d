package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateRequestID creates a short, human-readable id for a mediator request.
// Format: {kebab-case request name without Query/Command suffix}-{8charHexUUID}
//
// Example:
//   - Input: "GetMineTableQuery"
//   - Output: "get-mine-table-a3f8e2b1"
func GenerateRequestID(requestName string) string {
	name := kebabCase(trimRequestSuffix(requestName))
	if name == "" {
		name = "request"
	}
	return name + "-" + generateShortUUID()
}

func trimRequestSuffix(name string) string {
	for _, suffix := range []string{"Query", "Command"} {
		if trimmed := strings.TrimSuffix(name, suffix); trimmed != "" {
			name = trimmed
		}
	}
	return name
}

// kebabCase turns "GetMineTable" into "get-mine-table"
func kebabCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
