package comparison

import (
	"github.com/pricelens-lab/pricelens/pkg/errors"
)

// PeriodType identifies the sampling cadence a snapshot pair was exported with.
type PeriodType string

const (
	PeriodWeekly PeriodType = "weekly"
	PeriodDaily  PeriodType = "daily"
)

// ParsePeriod converts a raw period value into a PeriodType.
// The value is checked before any snapshot file is touched.
func ParsePeriod(value string) (PeriodType, error) {
	switch PeriodType(value) {
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodDaily:
		return PeriodDaily, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidPeriod, "period must be %q or %q, got %q", PeriodWeekly, PeriodDaily, value)
	}
}
