package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafeImageURL(t *testing.T) {
	t.Parallel()

	allowed := []string{"assets.talospioneers.com", "localhost"}

	tests := []struct {
		name  string
		url   string
		hosts []string
		want  bool
	}{
		{"https on allowed host", "https://assets.talospioneers.com/x.png", allowed, true},
		{"subdomain of allowed host", "https://cdn.assets.talospioneers.com/x.png", allowed, true},
		{"suffix that is not a subdomain", "https://evilassets.talospioneers.com.attacker.net/x.png", allowed, false},
		{"host outside allow-list", "https://imgur.com/x.png", allowed, false},
		{"javascript scheme always rejected", "javascript:alert(1)", nil, false},
		{"javascript scheme rejected with allow-list", "javascript:alert(1)", allowed, false},
		{"data scheme rejected", "data:image/svg+xml;base64,PHN2Zz4=", nil, false},
		{"blob always accepted", "blob:https://app.local/123", allowed, true},
		{"empty allow-list accepts any http host", "http://anywhere.example/x.png", nil, true},
		{"relative URL with empty allow-list", "/uploads/x.png", nil, true},
		{"relative URL with allow-list", "/uploads/x.png", allowed, false},
		{"empty string", "", nil, false},
		{"localhost for development", "http://localhost:3000/x.png", allowed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSafeImageURL(tt.url, tt.hosts))
		})
	}
}
