package verification_test

import (
	"testing"
	"verifier/internal/verification"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
		{name: "trims", in: "  a@b.com\n", want: "a@b.com"},
		{name: "lowercases domain part", in: "John.Doe@Example.COM", want: "John.Doe@example.com"},
		{name: "last at sign splits", in: "\"a@b\"@Example.com", want: "\"a@b\"@example.com"},
		{name: "no at sign kept", in: "Not-An-Email", want: "Not-An-Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, verification.NormalizeEmail(tt.in))
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: " ", want: ""},
		{name: "plain", in: "example.com", want: "example.com"},
		{name: "case and whitespace", in: "  Example.COM ", want: "example.com"},
		{name: "trailing dot", in: "example.com.", want: "example.com"},
		{name: "url", in: "https://Example.com:8443/about?x=1", want: "example.com"},
		{name: "host and port", in: "example.com:80", want: "example.com"},
		{name: "host and path", in: "example.com/contact", want: "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, verification.NormalizeDomain(tt.in))
		})
	}
}

func TestIsJSONObject(t *testing.T) {
	require.True(t, verification.IsJSONObject([]byte(`{"status":"valid"}`)))
	require.True(t, verification.IsJSONObject([]byte(` {} `)))
	require.False(t, verification.IsJSONObject([]byte(`[1,2]`)))
	require.False(t, verification.IsJSONObject([]byte(`"str"`)))
	require.False(t, verification.IsJSONObject([]byte(`{"a":`)))
	require.False(t, verification.IsJSONObject(nil))
}
