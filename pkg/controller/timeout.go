package controller

import (
	"net/http"
	"time"
)

// TimeoutBody is the body sent when a request exceeds its timeout.
const TimeoutBody = `{"error":"request timed out"}`

// timeoutWriter labels the 503 written by http.TimeoutHandler as JSON.
type timeoutWriter struct {
	http.ResponseWriter
}

func (w timeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}

// WithTimeout returns a middleware that cancels requests running longer than
// timeout and answers them with 503 and TimeoutBody.
func WithTimeout(next http.Handler, timeout time.Duration) http.Handler {
	h := http.TimeoutHandler(next, timeout, TimeoutBody)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(timeoutWriter{ResponseWriter: w}, r)
	})
}
