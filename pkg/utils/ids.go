package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonSlug = regexp.MustCompile(`[^A-Z0-9]+`)

// GeneratePlanID returns a new random plan identifier
func GeneratePlanID() string {
	return uuid.NewString()
}

// GenerateLegID creates a short, human-readable leg ID.
// Format: {FROM}-{TO}-{8charHexUUID}
//
// Example:
//   - Input: from="KPAO", to="KSQL"
//   - Output: "KPAO-KSQL-a3f8e2b1"
//
// Blank or unprintable waypoint names become "WPT".
func GenerateLegID(from, to string) string {
	return slug(from) + "-" + slug(to) + "-" + generateShortUUID()
}

func slug(name string) string {
	s := strings.Trim(nonSlug.ReplaceAllString(strings.ToUpper(name), "_"), "_")
	if s == "" {
		return "WPT"
	}
	return s
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
