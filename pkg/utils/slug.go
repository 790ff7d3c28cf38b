package utils

import "strings"

// NormalizeCategoryName lowercases and trims a display name so equivalent
// names differing only in case or surrounding whitespace collapse to one.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Slugify derives the URL-safe slug for a normalized category name by
// replacing internal spaces with hyphens. The mapping is deterministic:
// the same normalized name always yields the same slug.
func Slugify(normalizedName string) string {
	return strings.ReplaceAll(normalizedName, " ", "-")
}
