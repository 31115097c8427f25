package verification

import (
	"bytes"
	"context"
	"fmt"
	"time"
	"verifier/pkg/domain"
	"verifier/pkg/emailverifier"
	"verifier/pkg/logger"
	"verifier/pkg/serrors"
	"verifier/pkg/storage"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Validation messages returned to API clients.
const (
	MsgEmailRequired  = "Email is required"
	MsgDomainRequired = "Domain is required"
	MsgEmailNotFound  = "Email not found"
	MsgNotJSONObject  = "request body must be a JSON object"
)

// service is the concrete implementation of the Service interface.
// It validates input, calls the verification provider and keeps the results
// in storage.
type service struct {
	// client is the verification provider.
	client emailverifier.Client
	// storage caches results for the lifetime of the process.
	storage storage.Storage
	// now returns the timestamp recorded on stored results.
	now func() time.Time
}

// VerifyEmail verifies email against the provider and stores the outcome.
// A provider that cannot be reached does not fail the call: the failure is
// stored and returned as a REQUEST_FAILED result.
func (s service) VerifyEmail(ctx context.Context, email string) (*domain.EmailResult, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, MsgEmailRequired)
	}

	var result domain.EmailResult
	resp, err := s.client.VerifyEmail(ctx, email)
	if err != nil {
		logger.Warn(ctx, "email verification request failed", zap.String("email", email), zap.Error(err))
		result = domain.NewFailedEmailResult(email, err, s.now())
	} else {
		result = domain.NewProviderEmailResult(email, *resp, s.now())
	}

	if err := s.storage.StoreEmailResult(ctx, result); err != nil {
		return nil, fmt.Errorf("could not store email result: %w", err)
	}

	return &result, nil
}

// EmailResults returns every cached email result keyed by email.
func (s service) EmailResults(ctx context.Context) (map[string]domain.EmailResult, error) {
	res, err := s.storage.EmailResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get email results: %w", err)
	}

	return res, nil
}

// EmailResult returns the cached result of email. It returns a not-found
// error when email was never verified.
func (s service) EmailResult(ctx context.Context, email string) (*domain.EmailResult, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, MsgEmailRequired)
	}

	res, err := s.storage.EmailResult(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get email result: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, MsgEmailNotFound)
	}

	return res, nil
}

// UpdateEmailResult replaces the cached result of email with payload, which
// must be a JSON object. Only existing results can be replaced.
func (s service) UpdateEmailResult(ctx context.Context, email string, payload []byte) error {
	email = NormalizeEmail(email)
	if email == "" {
		return serrors.With(serrors.ErrBadRequest, MsgEmailRequired)
	}
	if !IsJSONObject(payload) {
		return serrors.With(serrors.ErrBadRequest, MsgNotJSONObject)
	}

	updated, err := s.storage.UpdateEmailResult(ctx, domain.EmailResult{
		Email:     email,
		Outcome:   domain.OutcomeManual,
		Payload:   bytes.TrimSpace(payload),
		UpdatedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("could not update email result: %w", err)
	}
	if !updated {
		return serrors.With(serrors.ErrNotFound, MsgEmailNotFound)
	}

	return nil
}

// DeleteEmailResult removes the cached result of email. If it does not exist,
// a not-found error is returned.
func (s service) DeleteEmailResult(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return serrors.With(serrors.ErrBadRequest, MsgEmailRequired)
	}

	deleted, err := s.storage.DeleteEmailResult(ctx, email)
	if err != nil {
		return fmt.Errorf("could not delete email result: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, MsgEmailNotFound)
	}

	return nil
}

// CountDomain asks the provider how many addresses it knows for domainName
// and stores the total. Nothing is stored when the provider fails or its
// answer carries no total; the returned error is then a bad gateway error.
func (s service) CountDomain(ctx context.Context, domainName string) (*domain.DomainCount, error) {
	domainName = NormalizeDomain(domainName)
	if domainName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, MsgDomainRequired)
	}

	resp, err := s.client.DomainCount(ctx, domainName)
	if err != nil {
		logger.Warn(ctx, "domain count request failed", zap.String("domain", domainName), zap.Error(err))

		return nil, fmt.Errorf("could not count domain: %w", err)
	}

	count := domain.DomainCount{
		Domain:    domainName,
		Total:     resp.Total,
		Raw:       resp.Body,
		UpdatedAt: s.now(),
	}
	if err := s.storage.StoreDomainCount(ctx, count); err != nil {
		return nil, fmt.Errorf("could not store domain count: %w", err)
	}

	return &count, nil
}

// DomainResults returns every cached domain count keyed by domain.
func (s service) DomainResults(ctx context.Context) (map[string]domain.DomainCount, error) {
	res, err := s.storage.DomainCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get domain results: %w", err)
	}

	return res, nil
}

// IsJSONObject reports whether b holds exactly one valid JSON object.
func IsJSONObject(b []byte) bool {
	if !jx.Valid(b) {
		return false
	}

	return jx.DecodeBytes(b).Next() == jx.Object
}

// New creates a new Service backed by the provided verification client and storage.
func New(client emailverifier.Client, storage storage.Storage) Service {
	return &service{
		client:  client,
		storage: storage,
		now:     time.Now,
	}
}
