package verification

import (
	"net"
	"net/url"
	"strings"
)

// NormalizeEmail returns the canonical form of an email address used as a
// cache key. Surrounding whitespace is removed and the domain part is
// lower-cased; the local part is kept as is since providers may treat it as
// case sensitive. An empty result means no email was given.
func NormalizeEmail(raw string) string {
	email := strings.TrimSpace(raw)

	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}

// NormalizeDomain returns the canonical form of a domain name used as a cache
// key:
//   - Trim surrounding whitespace and lower-case
//   - Drop a URL scheme, path, query and port if a URL or host:port was given
//   - Remove the trailing dot of a fully qualified name
//
// An empty result means no domain was given.
func NormalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))

	if strings.Contains(d, "://") {
		if u, err := url.Parse(d); err == nil {
			d = u.Host
		}
	}

	// drop path, query or fragment of a scheme-less input
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}

	if host, _, err := net.SplitHostPort(d); err == nil {
		d = host
	}

	return strings.TrimSuffix(d, ".")
}
