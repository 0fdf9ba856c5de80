package dataset

import (
	"fmt"
	"strings"
	"time"
)

// tradeDateLayouts are tried in order when parsing snapshot trade dates.
var tradeDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseTradeDate parses a snapshot date string against the known layouts.
func parseTradeDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)

	for _, layout := range tradeDateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("date %q does not match any supported layout", value)
}
