// Package hunterio provides an emailverifier.Client implementation backed by
// the Hunter.io v2 REST API.
package hunterio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"verifier/pkg/domain"
	"verifier/pkg/emailverifier"
	"verifier/pkg/metrics"
	"verifier/pkg/serrors"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the root of the Hunter.io v2 API.
	DefaultBaseURL = "https://api.hunter.io/v2/"
	// DefaultTimeout bounds a single outbound request.
	DefaultTimeout = 3 * time.Second

	verifierEndpoint = "email-verifier"
	countEndpoint    = "email-count"

	// maxBodyBytes caps how much of a provider response is read.
	maxBodyBytes = 1 << 20

	instrumentationName = "verifier/pkg/emailverifier/hunterio"
)

// Request outcomes recorded as the "outcome" metric attribute.
const (
	outcomeOK       = "ok"
	outcomeAPIError = "api_error"
	outcomeFailed   = "failed"
)

// Options configures a Client.
type Options struct {
	// HTTPClient performs the requests. When nil, a client with Timeout is created.
	HTTPClient *http.Client
	// BaseURL is the API root; DefaultBaseURL when empty.
	BaseURL string
	// APIKey is sent as the api_key query parameter.
	APIKey string
	// Timeout is used when HTTPClient is nil; DefaultTimeout when zero.
	Timeout time.Duration
	// RateLimit is the number of requests per second allowed; zero or less disables limiting.
	RateLimit float64
	// RateBurst is the limiter bucket size; at least 1.
	RateBurst int
	// MeterProvider records request metrics; the global provider when nil.
	MeterProvider metric.MeterProvider
	// TracerProvider records request spans; the global provider when nil.
	TracerProvider trace.TracerProvider
}

// Client talks to the Hunter.io REST API and fulfills the emailverifier.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client  // httpClient performs HTTP requests to Hunter.io
	baseURL    *url.URL      // baseURL always ends with a slash
	apiKey     string        // apiKey is the Hunter.io API key
	limiter    *rate.Limiter // limiter spaces out outbound requests

	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// Ensure Client conforms to the emailverifier.Client interface at compile time.
var _ emailverifier.Client = (*Client)(nil)

// New constructs a Client from opts.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse base URL: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := max(opts.RateBurst, 1)

	mp := opts.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	requests, err := meter.Int64Counter("verifier.provider.requests",
		metric.WithDescription("Number of requests sent to the verification provider."))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	duration, err := meter.Float64Histogram("verifier.provider.request.duration",
		metric.WithDescription("Duration of requests sent to the verification provider."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		apiKey:     opts.APIKey,
		limiter:    rate.NewLimiter(limit, burst),
		tracer:     tp.Tracer(instrumentationName),
		requests:   requests,
		duration:   duration,
	}, nil
}

// VerifyEmail calls the email-verifier endpoint.
// https://hunter.io/api-documentation/v2#email-verifier
func (c *Client) VerifyEmail(ctx context.Context, email string) (*domain.APIResponse, error) {
	return c.get(ctx, verifierEndpoint, url.Values{"email": {email}})
}

// DomainCount calls the email-count endpoint and extracts data.total.
// https://hunter.io/api-documentation/v2#email-count
func (c *Client) DomainCount(ctx context.Context, domainName string) (*domain.DomainCountResponse, error) {
	resp, err := c.get(ctx, countEndpoint, url.Values{"domain": {domainName}})
	if err != nil {
		if isTimeout(err) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "Request failed")
		}

		return nil, serrors.Wrap(serrors.ErrBadGateway, err, "Request failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("domain count failed with status %d", resp.StatusCode)
		if details := ErrorDetails(resp.Body); details != "" {
			msg += ": " + details
		}

		return nil, serrors.With(statusKind(resp.StatusCode), "%s", msg)
	}

	total, err := ParseTotal(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadGateway, err, "malformed domain count response")
	}

	return &domain.DomainCountResponse{APIResponse: *resp, Total: total}, nil
}

// statusKind maps a non-2xx provider status to the semantic kind reported to callers.
func statusKind(code int) serrors.Kind {
	switch {
	case code == http.StatusTooManyRequests:
		return serrors.ErrRateLimited
	case code >= http.StatusInternalServerError:
		return serrors.ErrUnavailable
	default:
		return serrors.ErrBadGateway
	}
}

// isTimeout reports whether err was caused by a deadline, either the client
// timeout or the caller's context.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }

	return errors.As(err, &te) && te.Timeout()
}

// get performs a rate limited GET on endpoint and returns the raw answer when
// it carries a JSON body, whatever its status code.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*domain.APIResponse, error) {
	ctx, span := c.tracer.Start(ctx, "hunterio "+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	outcome := outcomeFailed
	defer func() {
		attrs := metric.WithAttributes(
			attribute.String("endpoint", endpoint),
			attribute.String("outcome", outcome),
		)
		c.requests.Add(ctx, 1, attrs)
		c.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	resp, err := c.do(ctx, endpoint, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	outcome = outcomeOK
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = outcomeAPIError
	}

	return resp, nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) (*domain.APIResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	params.Set("api_key", c.apiKey)
	target := c.baseURL.ResolveReference(&url.URL{Path: endpoint, RawQuery: params.Encode()})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, api_key included
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, fmt.Errorf("%s %s: %w", uerr.Op, endpoint, uerr.Err)
		}

		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if !jx.Valid(b) {
		return nil, fmt.Errorf("%s answered status %d without a JSON body", endpoint, resp.StatusCode)
	}

	return &domain.APIResponse{StatusCode: resp.StatusCode, Body: b}, nil
}
