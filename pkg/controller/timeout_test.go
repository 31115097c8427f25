package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"verifier/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithTimeout_JSONBody(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(slow, 10*time.Millisecond).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/email-results", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, controller.TimeoutBody, rec.Body.String())
}

func TestWithTimeout_PassesThrough(t *testing.T) {
	fast := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok: true"))
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(fast, time.Second).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Equal(t, "ok: true", rec.Body.String())
}
