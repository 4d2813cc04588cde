package title

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain title",
			raw:  "Password Reset Help",
			want: "Password Reset Help",
		},
		{
			name: "wrapped in double quotes with newline",
			raw:  "\"Password Reset Help\"\n",
			want: "Password Reset Help",
		},
		{
			name: "wrapped in single quotes",
			raw:  "'Billing Question'",
			want: "Billing Question",
		},
		{
			name: "whitespace only",
			raw:  "   \n\t ",
			want: "",
		},
		{
			name: "truncated to column limit",
			raw:  strings.Repeat("a", 150),
			want: strings.Repeat("a", 100),
		},
		{
			name: "multibyte truncation counts runes",
			raw:  strings.Repeat("é", 150),
			want: strings.Repeat("é", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.raw))
		})
	}
}
