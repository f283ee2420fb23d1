package gallery

import (
	"net/url"
	"strings"
)

// placeholderBase resolves relative URLs during the safety check.
const placeholderBase = "https://placeholder.local"

// isSafeImageURL accepts a candidate existing-image URL only when it
// parses, its scheme is http, https or blob, and, for http/https, its
// hostname matches the allow-list exactly or as a subdomain. An empty
// allow-list accepts every hostname (backward compatibility). The check
// blocks script-executing schemes outright and limits SSRF exposure if
// URLs are ever processed off the client.
func isSafeImageURL(raw string, allowedHosts []string) bool {
	if raw == "" {
		return false
	}
	base, err := url.Parse(placeholderBase)
	if err != nil {
		return false
	}
	parsed, err := base.Parse(raw)
	if err != nil {
		return false
	}

	switch parsed.Scheme {
	case "blob":
		return true
	case "http", "https":
	default:
		return false
	}

	if len(allowedHosts) == 0 {
		return true
	}
	hostname := parsed.Hostname()
	for _, allowed := range allowedHosts {
		if hostname == allowed || strings.HasSuffix(hostname, "."+allowed) {
			return true
		}
	}
	return false
}
