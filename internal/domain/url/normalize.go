// Package url provides URL helpers for the browser shell.
package url

import (
	"net/url"
	"strings"
)

var schemePrefixes = []string{"http://", "https://", "file://", "about:"}

func hasScheme(input string) bool {
	for _, p := range schemePrefixes {
		if strings.HasPrefix(input, p) {
			return true
		}
	}
	return false
}

// Normalize adds an https:// prefix to URL-like input.
// Input that already has a scheme or does not look like a URL is returned unchanged.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || hasScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL reports whether input appears to be an address rather than a
// search query: an explicit scheme, or a dot and no spaces.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// Host returns the host of rawURL without a leading "www.".
func Host(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
