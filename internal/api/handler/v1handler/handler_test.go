package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"verifier/internal/api/handler/v1handler"
	"verifier/pkg/logger"
	"verifier/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, "error"); err != nil {
		panic(err)
	}
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", res.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "resource not found", res.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrBadRequest, "Email is required"))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "Email is required", res.Message)
}

func TestNewError_WrappedBadGateway(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not count domain: %w",
		serrors.Wrap(serrors.ErrBadGateway, errors.New("data.total is missing"), "malformed domain count response"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusBadGateway, res.StatusCode)
	require.Equal(t, "malformed domain count response: data.total is missing", res.Message)
}

func TestNewError_ProviderKinds(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		kind   serrors.Kind
		status int
		msg    string
	}{
		{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
		{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
		{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
		{serrors.ErrBadGateway, http.StatusBadGateway, "bad gateway"},
	}
	for _, tt := range tests {
		res := h.NewError(context.Background(), tt.kind)
		require.Equal(t, tt.status, res.StatusCode, tt.kind.Error())
		require.Equal(t, tt.msg, res.Message, tt.kind.Error())
	}
}
