package url

import (
	"net/url"
	"strings"
)

// DefaultSearchTemplate is the search engine used when none is configured.
const DefaultSearchTemplate = "https://www.google.com/search?q=%s"

// DefaultHomeURL is the page opened for new tabs and the home button.
const DefaultHomeURL = "https://google.com"

// BuildSearchURL escapes query and places it into template.
// The template carries a single %s placeholder; a template without one gets
// the query appended. A blank query yields "".
func BuildSearchURL(template, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	if template == "" {
		template = DefaultSearchTemplate
	}

	escaped := url.QueryEscape(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}

// ValidSearchTemplate reports whether template yields an absolute http(s) URL.
func ValidSearchTemplate(template string) bool {
	parsed, err := url.Parse(strings.Replace(template, "%s", "q", 1))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
