package model

import (
	"strings"
	"time"
)

// RepositorySummary is one entry of the account's public repository listing.
// Optional fields are nil when the API omitted them or sent null.
type RepositorySummary struct {
	Name        string
	Description *string
	Language    *string
	UpdatedAt   time.Time
	HTMLURL     string
	Homepage    *string
	Topics      []string
	Fork        bool
}

// Present returns the trimmed value of an optional field and whether it counts
// as present. A nil pointer and a string that is empty after trimming are both
// absent.
func Present(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// NormalizeName is the lookup key used for per-repository overrides.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
