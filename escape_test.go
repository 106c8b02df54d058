package uritemplate

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		allowReserved bool
		expected      string
	}{
		{"unreserved passthrough", "abc-XYZ_0.9~", false, "abc-XYZ_0.9~"},
		{"space", "hello world", false, "hello%20world"},
		{"reserved encoded", "a/b?c", false, "a%2Fb%3Fc"},
		{"reserved passthrough", "a/b?c#d", true, "a/b?c#d"},
		{"existing triplet kept when reserved allowed", "50%25", true, "50%25"},
		{"existing triplet re-encoded otherwise", "50%25", false, "50%2525"},
		{"bare percent encoded", "50%", true, "50%25"},
		{"multibyte", "日", false, "%E6%97%A5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input, tt.allowReserved))
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"space", "hello%20world", "hello world"},
		{"lowercase hex", "a%2fb", "a/b"},
		{"multibyte", "%E6%97%A5", "日"},
		{"malformed kept", "50%ZZ", "50%ZZ"},
		{"trailing percent kept", "50%", "50%"},
		{"truncated triplet kept", "50%2", "50%2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unescape(tt.input))
		})
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "hello world", "a/b?c#d[e]", "100% sure", "日本語"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, Unescape(Escape(input, false)))
		})
	}
}
