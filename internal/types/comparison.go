package types

import "time"

// TradeDateLayout is the canonical date format for trade dates in chart
// documents and summaries.
const TradeDateLayout = "2006-01-02"

// ComparisonRecord is a single closing price observation of one stock,
// tagged with the snapshot it came from.
type ComparisonRecord struct {
	TradeDate  time.Time
	Close      float64
	Provenance Provenance
}

// ComparisonTable is the union of both snapshots filtered to one stock code.
// Records from the unprocessed snapshot come first, followed by records from
// the processed snapshot; within each block the snapshot's own row order is
// preserved. The table is never deduplicated or re-sorted.
type ComparisonTable []ComparisonRecord

// Select returns the records tagged with the given provenance, in table order.
func (t ComparisonTable) Select(provenance Provenance) ComparisonTable {
	selected := make(ComparisonTable, 0, len(t))

	for _, record := range t {
		if record.Provenance == provenance {
			selected = append(selected, record)
		}
	}

	return selected
}
