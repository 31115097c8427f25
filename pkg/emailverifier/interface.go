// Package emailverifier defines the interface used to verify email addresses
// and count known addresses of a domain against a backing provider.
package emailverifier

import (
	"context"
	"verifier/pkg/domain"
)

// Client is the abstraction for verification providers.
//
// Implementations return an error only when no usable answer was received
// (transport failure, timeout, undecodable body). A provider answer with a
// non-2xx status is a response, not an error, for VerifyEmail.
//
//go:generate mockgen -package mockemailverifier -source=interface.go -destination=mock/mockemailverifier.go *
type Client interface {
	// VerifyEmail asks the provider to verify email and returns its raw answer.
	VerifyEmail(ctx context.Context, email string) (*domain.APIResponse, error)
	// DomainCount asks the provider how many addresses it knows for domainName
	// and extracts the total from the answer. Answers that carry no total
	// are reported as serrors.ErrBadGateway.
	DomainCount(ctx context.Context, domainName string) (*domain.DomainCountResponse, error)
}
