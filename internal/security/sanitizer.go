package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeString removes potentially dangerous characters from short fields
func SanitizeString(input string) string {
	// Trim whitespace
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Limit length
	if len(input) > 1000 {
		input = input[:1000]
	}

	return input
}

// SanitizeContent strips all HTML from user-authored text (forum posts,
// comments, feed posts, listings, messages, bios)
func SanitizeContent(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	return strings.TrimSpace(htmlPolicy.Sanitize(input))
}

// ValidateImageURL checks that an image URL is either empty, a site-relative
// path, or an https URL
func ValidateImageURL(url string) bool {
	if url == "" {
		return true
	}
	if len(url) > 500 {
		return false
	}
	return strings.HasPrefix(url, "/") || strings.HasPrefix(url, "https://")
}
