package urlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare host",
			raw:  "www.example.com",
			want: "https://www.example.com",
		},
		{
			name: "https unchanged",
			raw:  "https://example.com/path",
			want: "https://example.com/path",
		},
		{
			name: "http unchanged",
			raw:  "http://example.com",
			want: "http://example.com",
		},
		{
			name: "other scheme gets prefixed",
			raw:  "ftp://example.com",
			want: "https://ftp://example.com",
		},
		{
			name: "empty string",
			raw:  "",
			want: "https://",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{"www.example.com", "https://example.com", "http://a.bc", "not-a-url"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{
			name: "valid https url",
			url:  "https://www.example.com",
			want: true,
		},
		{
			name: "valid http url with path",
			url:  "http://example.com/a/b?c=d",
			want: true,
		},
		{
			name: "host with port",
			url:  "https://example.com:8080",
			want: true,
		},
		{
			name: "no scheme",
			url:  "www.example.com",
			want: false,
		},
		{
			name: "no host",
			url:  "https://",
			want: false,
		},
		{
			name: "host without dot",
			url:  "https://localhost",
			want: false,
		},
		{
			name: "host too short",
			url:  "https://a.b",
			want: false,
		},
		{
			name: "unparseable",
			url:  "https://exa mple.com",
			want: false,
		},
		{
			name: "empty string",
			url:  "",
			want: false,
		},
		{
			name: "normalized not-a-url",
			url:  "https://not-a-url",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.url))
		})
	}
}
