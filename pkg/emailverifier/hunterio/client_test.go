package hunterio_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"verifier/pkg/emailverifier/hunterio"
	"verifier/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *hunterio.Client {
	t.Helper()

	c, err := hunterio.New(hunterio.Options{
		HTTPClient: &http.Client{Transport: fn},
		APIKey:     "test-key",
	})
	require.NoError(t, err)

	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_VerifyEmail_success(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.hunter.io", r.URL.Host)
		require.Equal(t, "/v2/email-verifier", r.URL.Path)
		require.Equal(t, "a+tag@b.com", r.URL.Query().Get("email"))
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		return jsonResponse(http.StatusOK, `{"status":"deliverable"}`), nil
	})

	res, err := c.VerifyEmail(context.Background(), "a+tag@b.com")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"deliverable"}`, string(res.Body))
}

func TestClient_VerifyEmail_apiErrorIsAResponse(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized,
			`{"errors":[{"id":"authentication_failed","code":401,"details":"No user found for the API key supplied"}]}`), nil
	})

	res, err := c.VerifyEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Contains(t, string(res.Body), "authentication_failed")
}

func TestClient_VerifyEmail_transportErrorHidesAPIKey(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	res, err := c.VerifyEmail(context.Background(), "a@b.com")
	require.Error(t, err)
	require.Nil(t, res)
	require.Contains(t, err.Error(), "connection refused")
	require.NotContains(t, err.Error(), "test-key")
	require.NotContains(t, err.Error(), "api_key")
}

func TestClient_VerifyEmail_invalidJSON(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("<html>bad gateway</html>")),
		}, nil
	})

	_, err := c.VerifyEmail(context.Background(), "a@b.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "without a JSON body")
}

func TestClient_VerifyEmail_timeout(t *testing.T) {
	c, err := hunterio.New(hunterio.Options{
		HTTPClient: &http.Client{
			Timeout: 20 * time.Millisecond,
			Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
				<-r.Context().Done()

				return nil, r.Context().Err()
			}),
		},
		APIKey: "test-key",
	})
	require.NoError(t, err)

	_, err = c.VerifyEmail(context.Background(), "a@b.com")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "test-key")
}

func TestClient_BaseURLWithoutTrailingSlash(t *testing.T) {
	c, err := hunterio.New(hunterio.Options{
		BaseURL: "http://mock.local/v2",
		HTTPClient: &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
			require.Equal(t, "mock.local", r.URL.Host)
			require.Equal(t, "/v2/email-count", r.URL.Path)

			return jsonResponse(http.StatusOK, `{"data":{"total":1}}`), nil
		})},
	})
	require.NoError(t, err)

	_, err = c.DomainCount(context.Background(), "example.com")
	require.NoError(t, err)
}

func TestClient_DomainCount_success(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v2/email-count", r.URL.Path)
		require.Equal(t, "example.com", r.URL.Query().Get("domain"))
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		return jsonResponse(http.StatusOK, `{"data":{"total":42,"personal_emails":30},"meta":{"params":{"domain":"example.com"}}}`), nil
	})

	res, err := c.DomainCount(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, 42, res.Total)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(res.Body), "personal_emails")
}

func TestClient_DomainCount_missingTotal(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data":{"personal_emails":30}}`), nil
	})

	_, err := c.DomainCount(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrBadGateway)
	require.Contains(t, err.Error(), "data.total is missing")
}

func TestClient_DomainCount_non2xx(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   serrors.Kind
		msg    string
	}{
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"errors":[{"id":"too_many_requests","code":429,"details":"You have reached the rate limit"}]}`,
			kind:   serrors.ErrRateLimited,
			msg:    "domain count failed with status 429: You have reached the rate limit",
		},
		{
			name:   "provider down",
			status: http.StatusServiceUnavailable,
			body:   `{"errors":[{"id":"unavailable","code":503,"details":"Try again later"}]}`,
			kind:   serrors.ErrUnavailable,
			msg:    "domain count failed with status 503: Try again later",
		},
		{
			name:   "invalid key",
			status: http.StatusUnauthorized,
			body:   `{"errors":[{"id":"authentication_failed","code":401,"details":"No user found for the API key supplied"}]}`,
			kind:   serrors.ErrBadGateway,
			msg:    "domain count failed with status 401: No user found for the API key supplied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
				return jsonResponse(tt.status, tt.body), nil
			})

			_, err := c.DomainCount(context.Background(), "example.com")
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestClient_DomainCount_timeout(t *testing.T) {
	c, err := hunterio.New(hunterio.Options{
		HTTPClient: &http.Client{
			Timeout: 20 * time.Millisecond,
			Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
				<-r.Context().Done()

				return nil, r.Context().Err()
			}),
		},
		APIKey: "test-key",
	})
	require.NoError(t, err)

	_, err = c.DomainCount(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.NotErrorIs(t, err, serrors.ErrBadGateway)
	require.NotContains(t, err.Error(), "test-key")
}

func TestClient_DomainCount_transportError(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("no route to host")
	})

	_, err := c.DomainCount(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrBadGateway)
	require.True(t, strings.HasPrefix(err.Error(), "Request failed: "), err.Error())
	require.NotContains(t, err.Error(), "test-key")
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	calls := 0
	c, err := hunterio.New(hunterio.Options{
		HTTPClient: &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
			calls++

			return jsonResponse(http.StatusOK, `{}`), nil
		})},
		RateLimit: 0.001,
		RateBurst: 1,
	})
	require.NoError(t, err)

	_, err = c.VerifyEmail(context.Background(), "a@b.com")
	require.NoError(t, err)

	// the bucket is empty and the next token is far away
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.VerifyEmail(ctx, "a@b.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limiter")
	require.Equal(t, 1, calls)
}

func TestClient_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	c, err := hunterio.New(hunterio.Options{
		HTTPClient: &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"status":"deliverable"}`), nil
		})},
		MeterProvider: mp,
	})
	require.NoError(t, err)

	_, err = c.VerifyEmail(context.Background(), "a@b.com")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	require.True(t, names["verifier.provider.requests"])
	require.True(t, names["verifier.provider.request.duration"])
}
