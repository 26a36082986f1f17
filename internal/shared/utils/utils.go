package utils

import (
	"os"
	"strconv"
	"strings"
)

// GetEnvVariable reads an environment variable with a fallback default
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// TrimToNil trims whitespace and maps the empty result to nil.
// Used everywhere an optional free-text field is normalized before
// persisting.
func TrimToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ParseOptionalInt parses a form value into *int.
// Blank or unparseable input is treated as absent, matching the lenient
// handling of the player-count fields.
func ParseOptionalInt(s string) *int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &n
}

// CleanGenreNames trims each name, drops blanks, and removes duplicates
// while preserving first-seen order.
func CleanGenreNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	cleaned := make([]string, 0, len(names))

	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		cleaned = append(cleaned, trimmed)
	}

	return cleaned
}
