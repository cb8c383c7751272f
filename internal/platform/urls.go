package platform

import (
	"net/url"
	"strings"
)

// Instagram URL path markers
const (
	ReelPathMarker = "/reel/"
	PostPathMarker = "/p/"
)

// Accepted Instagram hosts
var instagramHosts = []string{"instagram.com", "www.instagram.com"}

// IsValidPostURL reports whether the URL points at an Instagram reel or post.
// The host must be instagram.com and the path must contain /reel/ or /p/.
func IsValidPostURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	hostOK := false
	for _, host := range instagramHosts {
		if parsed.Host == host {
			hostOK = true
			break
		}
	}
	if !hostOK {
		return false
	}

	return strings.Contains(parsed.Path, ReelPathMarker) || strings.Contains(parsed.Path, PostPathMarker)
}

// ExtractShortcode extracts the post shortcode from an Instagram URL.
// Returns an empty string when the URL matches no known post pattern.
// Trailing path segments and query strings are stripped from the code.
func ExtractShortcode(rawURL string) string {
	var rest string
	switch {
	case strings.Contains(rawURL, ReelPathMarker):
		rest = strings.SplitN(rawURL, ReelPathMarker, 2)[1]
	case strings.Contains(rawURL, PostPathMarker):
		rest = strings.SplitN(rawURL, PostPathMarker, 2)[1]
	default:
		return ""
	}

	rest = strings.SplitN(rest, "/", 2)[0]
	rest = strings.SplitN(rest, "?", 2)[0]
	return rest
}
