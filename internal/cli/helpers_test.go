package cli

import (
	"strings"
	"testing"
)

func TestResolveInput(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		set      bool
		stdin    string
		want     string
	}{
		{"flag wins", "abc", true, "ignored\n", "abc"},
		{"explicit empty flag", "", true, "ignored\n", ""},
		{"from stdin", "", false, "hello\n", "hello"},
		{"crlf stripped", "", false, "hello\r\n", "hello"},
		{"no trailing newline", "", false, "hello", "hello"},
		{"empty stdin", "", false, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveInput(tc.explicit, tc.set, strings.NewReader(tc.stdin))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
