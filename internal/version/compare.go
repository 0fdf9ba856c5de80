package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedSchemaVersion is the Vega-Lite schema line that chart documents
// are written against.
const SupportedSchemaVersion = "5.21.0"

// CheckSchemaCompatibility checks if a requested Vega-Lite schema version can
// be rendered. Returns nil if compatible, error with details if not.
//
// Compatibility Rules:
//   - The requested version must parse as semver ("5", "5.21" and "v5.21.0" all work)
//   - Major versions must match exactly
//   - Minor and patch versions can differ, since rendered documents only
//     reference the major schema line in their $schema URL
//
// Examples:
//   - Requested 5.21.0 -> OK (exact match)
//   - Requested 5.8.0  -> OK (minor differs)
//   - Requested v5     -> OK (v prefix and short form accepted)
//   - Requested 4.17.0 -> ERROR (major differs)
//   - Requested 6.0.0  -> ERROR (major differs)
func CheckSchemaCompatibility(requestedVersion string) error {
	// Strip 'v' prefix if present for consistency
	requestedVersion = strings.TrimPrefix(requestedVersion, "v")

	// Parse requested version
	requestedSemver, err := semver.NewVersion(requestedVersion)
	if err != nil {
		return fmt.Errorf("invalid schema version '%s': %w", requestedVersion, err)
	}

	// Parse supported version
	supportedSemver, err := semver.NewVersion(SupportedSchemaVersion)
	if err != nil {
		return fmt.Errorf("invalid supported schema version '%s': %w", SupportedSchemaVersion, err)
	}

	// Check major version match
	if requestedSemver.Major() != supportedSemver.Major() {
		return fmt.Errorf("schema major version mismatch: documents are written for v%d.x.x but v%d.x.x was requested",
			supportedSemver.Major(), requestedSemver.Major())
	}

	// Minor and patch versions can differ, so we're compatible
	return nil
}

// SchemaURL returns the Vega-Lite JSON schema URL for the major line of the
// given version.
func SchemaURL(schemaVersion string) string {
	schemaVersion = strings.TrimPrefix(schemaVersion, "v")

	parsed, err := semver.NewVersion(schemaVersion)
	if err != nil {
		return fmt.Sprintf("https://vega.github.io/schema/vega-lite/v%s.json", schemaVersion)
	}

	return fmt.Sprintf("https://vega.github.io/schema/vega-lite/v%d.json", parsed.Major())
}
