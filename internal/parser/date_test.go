package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		line string
		want time.Time
	}{
		{
			name: "four digit year with slashes",
			line: "Date: 05/10/2024",
			want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name: "four digit year with dashes",
			line: "05-10-2024 14:32",
			want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name: "no leading zeros",
			line: "5/9/2024",
			want: time.Date(2024, 5, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name: "two digit year below pivot maps to 2000s",
			line: "05/10/24",
			want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name: "two digit year above pivot maps to 1900s",
			line: "05/10/87",
			want: time.Date(1987, 5, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name: "pivot boundary 49 maps to 2049",
			line: "01/01/49",
			want: time.Date(2049, 1, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "pivot boundary 50 maps to 1950",
			line: "01/01/50",
			want: time.Date(1950, 1, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "date embedded in surrounding text",
			line: "TRANS 0042 11/23/2023 REG 2",
			want: time.Date(2023, 11, 23, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDate(tt.line)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestExtractDate_NotFound(t *testing.T) {
	lines := []string{
		"",
		"no date here",
		"13/45/2024",  // impossible month and day
		"02/30/2024",  // does not survive calendar round-trip
		"total 12.99", // price is not a date
	}

	for _, line := range lines {
		_, ok := ExtractDate(line)
		assert.False(t, ok, "line %q", line)
	}
}
