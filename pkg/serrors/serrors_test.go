package serrors_test

import (
	"errors"
	"fmt"
	"testing"
	"verifier/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
		serrors.ErrBadGateway,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrBadGateway, serrors.ErrUnavailable, "BadGateway should not equal Unavailable")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "Email %s not found", "a@b.com")
	require.Equal(t, "Email a@b.com not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrBadGateway, base, "counting domain")
	require.Equal(t, "counting domain: connection refused", e2.Error(), "Wrap() Error() mismatch")

	var e3 serrors.Error
	require.Equal(t, "unknown error", e3.Error(), "zero Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrRateLimited, base, "too many requests")
	require.Equal(t, serrors.ErrRateLimited, e.Kind())
	require.Equal(t, "too many requests", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.With(serrors.ErrBadRequest, "Email is required")))

	wrapped := fmt.Errorf("could not verify: %w", serrors.With(serrors.ErrNotFound, "Email not found"))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(serrors.ErrTimeout))
}

func TestMessageOf(t *testing.T) {
	require.Empty(t, serrors.MessageOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrNotFound, "Email not found"))
	require.Equal(t, "Email not found", serrors.MessageOf(wrapped))

	withCause := serrors.Wrap(serrors.ErrBadGateway, errors.New("data.total is missing"), "malformed domain count response")
	require.Equal(t, "malformed domain count response: data.total is missing", serrors.MessageOf(withCause))

	require.Empty(t, serrors.MessageOf(serrors.ErrTimeout))
}
