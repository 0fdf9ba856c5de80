package dataset

import (
	"context"

	"github.com/pricelens-lab/pricelens/internal/types"
)

// ProgressFn reports load progress as rows are appended to the comparison
// table. current is the number of rows loaded so far and total the number of
// matching rows across both snapshots.
type ProgressFn func(current int, total int)

type Loader interface {
	// Load reads both snapshot files, filters them to the given stock code and
	// returns the union table with the raw series first. Row order within each
	// snapshot is preserved.
	Load(ctx context.Context, processedPath string, unprocessedPath string, stockCode int64) (types.ComparisonTable, error)
	// Close closes the loader and releases any resources
	Close() error
}
