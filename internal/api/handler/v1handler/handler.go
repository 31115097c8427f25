// Package v1handler implements the HTTP routes of the verification API.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"verifier/internal/verification"
	"verifier/pkg/logger"
	"verifier/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers depend on.
type Deps struct {
	Verification verification.Service
}

type Handler struct {
	verification verification.Service
}

func New(deps Deps) *Handler {
	return &Handler{
		verification: deps.Verification,
	}
}

// Register adds every v1 route to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /verify-email", h.VerifyEmail)
	mux.HandleFunc("GET /email-results", h.EmailResults)
	mux.HandleFunc("GET /email-results/{email}", h.EmailResult)
	mux.HandleFunc("PUT /email-results/{email}", h.UpdateEmailResult)
	mux.HandleFunc("DELETE /email-results/{email}", h.DeleteEmailResult)
	mux.HandleFunc("GET /domain-results", h.DomainResults)
	mux.HandleFunc("GET /domain-count-result", h.DomainCountResult)
}

// ErrorResponse is the status code and message sent for a failed request.
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// NewError maps err to the response sent to the client. Semantic errors keep
// their message; anything else is logged and hidden behind a generic 500.
func (h Handler) NewError(ctx context.Context, err error) ErrorResponse {
	var status int
	var fallback string
	switch kind := serrors.KindOf(err); {
	case errors.Is(kind, serrors.ErrBadRequest):
		status, fallback = http.StatusBadRequest, "bad request"
	case errors.Is(kind, serrors.ErrNotFound):
		status, fallback = http.StatusNotFound, "resource not found"
	case errors.Is(kind, serrors.ErrBadGateway):
		status, fallback = http.StatusBadGateway, "bad gateway"
	case errors.Is(kind, serrors.ErrTimeout):
		status, fallback = http.StatusGatewayTimeout, "request timed out"
	case errors.Is(kind, serrors.ErrRateLimited):
		status, fallback = http.StatusTooManyRequests, "too many requests"
	case errors.Is(kind, serrors.ErrUnavailable):
		status, fallback = http.StatusServiceUnavailable, "service unavailable"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return ErrorResponse{StatusCode: http.StatusInternalServerError, Message: "internal error"}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = fallback
	}

	return ErrorResponse{StatusCode: status, Message: msg}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) {
			e.Str(res.Message)
		})
	})
	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeMessage(w http.ResponseWriter, msg string) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("message", func(e *jx.Encoder) {
			e.Str(msg)
		})
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}

// raw writes b verbatim, or null when there is nothing to write.
func raw(e *jx.Encoder, b []byte) {
	if len(b) == 0 {
		e.Null()

		return
	}
	e.Raw(b)
}
