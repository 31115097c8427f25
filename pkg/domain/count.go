package domain

import "time"

// DomainCountResponse is a domain count answer of the verification provider
// together with the validated total extracted from it.
type DomainCountResponse struct {
	APIResponse

	// Total is the value of data.total in Body.
	Total int
}

// DomainCount is the cached number of email addresses known for a domain.
type DomainCount struct {
	// Domain is the key of the result.
	Domain string
	// Total is the count reported by the provider.
	Total int
	// Raw is the provider response the count was extracted from.
	Raw []byte
	// UpdatedAt is the time the count was last written.
	UpdatedAt time.Time
}
