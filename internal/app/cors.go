package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether a request origin matches any configured
// pattern. A pattern is an exact "host[:port]", a "*.domain" subdomain
// wildcard, or a "host:*" any-port wildcard; matching is on the host part
// of the origin URL.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, pattern := range patterns {
		switch {
		case pattern == host:
			return true
		case strings.HasPrefix(pattern, "*."):
			if strings.HasSuffix(host, pattern[1:]) {
				return true
			}
		case strings.HasSuffix(pattern, ":*"):
			if strings.HasPrefix(host, pattern[:len(pattern)-1]) {
				return true
			}
		}
	}
	return false
}
