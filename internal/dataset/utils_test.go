package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradeDate(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "dashed date",
			value:    "2025-01-03",
			expected: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "slashed date",
			value:    "2025/01/03",
			expected: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "compact date",
			value:    "20250103",
			expected: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "timestamp",
			value:    "2025-01-03 00:00:00",
			expected: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339",
			value:    "2025-01-03T15:04:05Z",
			expected: time.Date(2025, 1, 3, 15, 4, 5, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			value:    " 2025-01-03 ",
			expected: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "garbage",
			value:       "not-a-date",
			expectError: true,
		},
		{
			name:        "empty",
			value:       "",
			expectError: true,
		},
		{
			name:        "month out of range",
			value:       "2025-13-03",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseTradeDate(tt.value)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "does not match any supported layout")
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(parsed), "expected %v, got %v", tt.expected, parsed)
			}
		})
	}
}
