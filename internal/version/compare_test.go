package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchemaCompatibility(t *testing.T) {
	tests := []struct {
		name             string
		requestedVersion string
		expectError      bool
		errorContains    string
	}{
		// Compatible cases
		{
			name:             "exact match",
			requestedVersion: "5.21.0",
			expectError:      false,
		},
		{
			name:             "minor lower",
			requestedVersion: "5.8.0",
			expectError:      false,
		},
		{
			name:             "minor higher",
			requestedVersion: "5.99.0",
			expectError:      false,
		},
		{
			name:             "major only short form",
			requestedVersion: "5",
			expectError:      false,
		},
		{
			name:             "major minor short form",
			requestedVersion: "5.21",
			expectError:      false,
		},

		// Incompatible cases
		{
			name:             "major lower",
			requestedVersion: "4.17.0",
			expectError:      true,
			errorContains:    "major version mismatch",
		},
		{
			name:             "major higher",
			requestedVersion: "6.0.0",
			expectError:      true,
			errorContains:    "major version mismatch",
		},

		// Edge cases with v prefix
		{
			name:             "v prefix",
			requestedVersion: "v5.21.0",
			expectError:      false,
		},
		{
			name:             "v prefix short form",
			requestedVersion: "v5",
			expectError:      false,
		},
		{
			name:             "v prefix wrong major",
			requestedVersion: "v4",
			expectError:      true,
			errorContains:    "major version mismatch",
		},

		// Edge cases with prerelease and metadata
		{
			name:             "prerelease version",
			requestedVersion: "5.21.0-beta",
			expectError:      false,
		},
		{
			name:             "build metadata",
			requestedVersion: "5.21.0+build123",
			expectError:      false,
		},

		// Invalid versions
		{
			name:             "invalid version",
			requestedVersion: "not-a-version",
			expectError:      true,
			errorContains:    "invalid schema version",
		},
		{
			name:             "empty version",
			requestedVersion: "",
			expectError:      true,
			errorContains:    "invalid schema version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSchemaCompatibility(tt.requestedVersion)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSchemaURL(t *testing.T) {
	tests := []struct {
		name          string
		schemaVersion string
		expected      string
	}{
		{
			name:          "full version collapses to major line",
			schemaVersion: "5.21.0",
			expected:      "https://vega.github.io/schema/vega-lite/v5.json",
		},
		{
			name:          "major only",
			schemaVersion: "5",
			expected:      "https://vega.github.io/schema/vega-lite/v5.json",
		},
		{
			name:          "v prefix",
			schemaVersion: "v5.8.1",
			expected:      "https://vega.github.io/schema/vega-lite/v5.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SchemaURL(tt.schemaVersion))
		})
	}
}

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	assert.Equal(t, Version, v)
}
