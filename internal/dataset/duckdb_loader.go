package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pricelens-lab/pricelens/internal/logger"
	"github.com/pricelens-lab/pricelens/internal/types"
	"github.com/pricelens-lab/pricelens/pkg/errors"
	"go.uber.org/zap"
)

// requiredColumns are the columns every snapshot file must carry. Additional
// columns are ignored.
var requiredColumns = []string{"stock_code", "trade_date", "close"}

// snapshotSource describes one of the two snapshot files of a load.
type snapshotSource struct {
	role       string // names the snapshot in error messages
	view       string // DuckDB view the file is mounted as
	path       string
	provenance types.Provenance
}

type DuckDBLoader struct {
	db         *sql.DB
	logger     *logger.Logger
	sq         squirrel.StatementBuilderType
	onProgress ProgressFn
}

// NewLoader creates a DuckDB backed loader working on an in-memory database.
// Snapshot files are mounted as views when Load is called, so nothing is
// copied to disk. onProgress may be nil.
// Returns a Loader interface and any error encountered during creation.
func NewLoader(logger *logger.Logger, onProgress ProgressFn) (Loader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open DuckDB", err)
	}

	// Set DuckDB-specific optimizations. Insertion order must be preserved so
	// rows come back in snapshot file order without an ORDER BY.
	_, err = db.Exec(`
		SET memory_limit='2GB';
		SET threads=4;
		SET preserve_insertion_order=true;
	`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to set DuckDB optimizations", err)
	}

	return &DuckDBLoader{
		db:         db,
		logger:     logger,
		sq:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		onProgress: onProgress,
	}, nil
}

// Load implements Loader.
// Validation runs before any row is read: file existence, then schema, then
// stock code presence, checking the processed snapshot first at every step.
// The first failure aborts the load.
func (l *DuckDBLoader) Load(ctx context.Context, processedPath string, unprocessedPath string, stockCode int64) (types.ComparisonTable, error) {
	l.logger.Info("Loading snapshots",
		zap.String("processed", processedPath),
		zap.String("unprocessed", unprocessedPath),
		zap.Int64("stock_code", stockCode))

	sources := []snapshotSource{
		{role: "processed", view: "processed_snapshot", path: processedPath, provenance: types.ProvenanceProcessed},
		{role: "unprocessed", view: "unprocessed_snapshot", path: unprocessedPath, provenance: types.ProvenanceRaw},
	}

	for _, source := range sources {
		if _, err := os.Stat(source.path); err != nil {
			return nil, errors.Wrapf(errors.ErrCodeFileNotFound, err, "%s snapshot file not found: %s", source.role, source.path)
		}
	}

	for _, source := range sources {
		if err := l.createView(ctx, source); err != nil {
			return nil, err
		}
	}

	for _, source := range sources {
		if err := l.checkSchema(ctx, source); err != nil {
			return nil, err
		}
	}

	total := 0

	for _, source := range sources {
		count, err := l.countMatches(ctx, source, stockCode)
		if err != nil {
			return nil, err
		}

		if count == 0 {
			return nil, errors.Newf(errors.ErrCodeStockCodeNotFound, "stock code %d not found in %s snapshot %s", stockCode, source.role, source.path)
		}

		total += count
	}

	// Raw series first, then processed, matching the table contract
	table := make(types.ComparisonTable, 0, total)

	for _, source := range []snapshotSource{sources[1], sources[0]} {
		var err error

		table, err = l.appendSeries(ctx, table, source, stockCode, total)
		if err != nil {
			return nil, err
		}
	}

	l.logger.Info("Snapshots loaded",
		zap.Int64("stock_code", stockCode),
		zap.Int("raw_rows", len(table.Select(types.ProvenanceRaw))),
		zap.Int("processed_rows", len(table.Select(types.ProvenanceProcessed))))

	return table, nil
}

// createView mounts a snapshot CSV as a DuckDB view.
func (l *DuckDBLoader) createView(ctx context.Context, source snapshotSource) error {
	// read_csv_auto takes the path as a SQL string literal, so quotes in the
	// path must be doubled
	escaped := strings.ReplaceAll(source.path, "'", "''")

	// Using raw SQL as Squirrel doesn't support CREATE VIEW
	query := fmt.Sprintf(`
		CREATE OR REPLACE VIEW %s AS
		SELECT * FROM read_csv_auto('%s');
	`, source.view, escaped)

	if _, err := l.db.ExecContext(ctx, query); err != nil {
		return errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to read %s snapshot %s", source.role, source.path)
	}

	return nil
}

// checkSchema verifies the snapshot view carries every required column.
func (l *DuckDBLoader) checkSchema(ctx context.Context, source snapshotSource) error {
	query, args, err := l.sq.
		Select("column_name").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_name": source.view}).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build schema query", err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to inspect %s snapshot schema", source.role)
	}
	defer rows.Close()

	present := make(map[string]bool)

	for rows.Next() {
		var column string
		if err := rows.Scan(&column); err != nil {
			return errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan column name", err)
		}

		present[column] = true
	}

	if err = rows.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "error iterating schema rows", err)
	}

	var missing []string

	for _, column := range requiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return errors.Wrapf(errors.ErrCodeMissingColumns,
			errors.NewMissingColumnsError(source.path, missing),
			"%s snapshot has an invalid schema", source.role)
	}

	return nil
}

// countMatches returns the number of snapshot rows for the stock code.
func (l *DuckDBLoader) countMatches(ctx context.Context, source snapshotSource, stockCode int64) (int, error) {
	// try_cast keeps snapshots usable when stock_code was read as text
	query, args, err := l.sq.
		Select("COUNT(*)").
		From(source.view).
		Where(squirrel.Expr("try_cast(stock_code AS BIGINT) = ?", stockCode)).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build count query", err)
	}

	var count int
	if err := l.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to count %s snapshot rows", source.role)
	}

	return count, nil
}

// appendSeries reads one snapshot's matching rows and appends them to the
// table in file order.
func (l *DuckDBLoader) appendSeries(ctx context.Context, table types.ComparisonTable, source snapshotSource, stockCode int64, total int) (types.ComparisonTable, error) {
	// Dates are scanned as text and parsed here so a bad value fails with the
	// offending row instead of a cast error from the whole query. No ORDER BY:
	// rows come back in snapshot file order.
	query, args, err := l.sq.
		Select("CAST(trade_date AS VARCHAR)", "try_cast(close AS DOUBLE)").
		From(source.view).
		Where(squirrel.Expr("try_cast(stock_code AS BIGINT) = ?", stockCode)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build series query", err)
	}

	// Use a prepared statement for better performance
	stmt, err := l.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to prepare %s series query", source.role)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query %s snapshot", source.role)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawDate string
			close   sql.NullFloat64
		)

		if err := rows.Scan(&rawDate, &close); err != nil {
			return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to scan %s snapshot row", source.role)
		}

		tradeDate, err := parseTradeDate(rawDate)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDateParseFailed, err, "unparseable trade date %q in %s snapshot", rawDate, source.role)
		}

		if !close.Valid {
			return nil, errors.Newf(errors.ErrCodeValueParseFailed, "missing or unparseable close value in %s snapshot at trade date %s", source.role, rawDate)
		}

		table = append(table, types.ComparisonRecord{
			TradeDate:  tradeDate,
			Close:      close.Float64,
			Provenance: source.provenance,
		})

		if l.onProgress != nil {
			l.onProgress(len(table), total)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "error iterating %s snapshot rows", source.role)
	}

	return table, nil
}

// Close implements Loader.
func (l *DuckDBLoader) Close() error {
	if l.db != nil {
		return l.db.Close()
	}

	return nil
}
