package domain

import (
	"time"

	"github.com/go-faster/jx"
)

// Outcome describes how the stored payload of an EmailResult came to be.
type Outcome string

const (
	// OutcomeOK indicates the provider answered with a 2xx status and a JSON body.
	OutcomeOK Outcome = "OK"
	// OutcomeAPIError indicates the provider answered with a non-2xx status and a JSON body.
	OutcomeAPIError Outcome = "API_ERROR"
	// OutcomeRequestFailed indicates no usable provider response was received.
	OutcomeRequestFailed Outcome = "REQUEST_FAILED"
	// OutcomeManual indicates the payload was replaced by a client.
	OutcomeManual Outcome = "MANUAL"
)

// RequestFailedPrefix prefixes the message exposed for REQUEST_FAILED results.
const RequestFailedPrefix = "Request failed: "

// APIResponse is a raw response of the verification provider.
type APIResponse struct {
	// StatusCode is the HTTP status code returned by the provider.
	StatusCode int
	// Body is the JSON document returned by the provider.
	Body []byte
}

// EmailResult is the cached outcome of verifying a single email address.
type EmailResult struct {
	// Email is the key of the result.
	Email string
	// Outcome tells a provider answer apart from a local failure.
	Outcome Outcome
	// StatusCode is the provider status code; zero for REQUEST_FAILED and MANUAL.
	StatusCode int
	// Payload is the JSON document exposed for this result. Empty for REQUEST_FAILED.
	Payload []byte
	// Failure describes why the request failed when Outcome is REQUEST_FAILED.
	Failure string
	// UpdatedAt is the time the result was last written.
	UpdatedAt time.Time
}

// NewFailedEmailResult builds a REQUEST_FAILED result for email.
func NewFailedEmailResult(email string, cause error, at time.Time) EmailResult {
	return EmailResult{
		Email:     email,
		Outcome:   OutcomeRequestFailed,
		Failure:   cause.Error(),
		UpdatedAt: at,
	}
}

// NewProviderEmailResult builds a result from a provider response, classifying
// it as OK or API_ERROR by status code.
func NewProviderEmailResult(email string, resp APIResponse, at time.Time) EmailResult {
	outcome := OutcomeOK
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = OutcomeAPIError
	}

	return EmailResult{
		Email:      email,
		Outcome:    outcome,
		StatusCode: resp.StatusCode,
		Payload:    resp.Body,
		UpdatedAt:  at,
	}
}

// Body returns the JSON document exposed to API clients for this result.
// REQUEST_FAILED results are rendered as {"error":"Request failed: <message>"}.
func (r EmailResult) Body() []byte {
	if r.Outcome != OutcomeRequestFailed {
		return r.Payload
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) {
			e.Str(RequestFailedPrefix + r.Failure)
		})
	})

	return e.Bytes()
}
