package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty matches everything", "", "%%"},
		{"lower cases", "Title", "%title%"},
		{"escapes wildcards", "100%_done", `%100\%\_done%`},
		{"escapes escape char", `a\b`, `%a\\b%`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPattern(tt.in))
		})
	}
}
