package types

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SeriesSummary describes one provenance series of a comparison table.
type SeriesSummary struct {
	// Provenance of the series.
	Provenance Provenance `yaml:"provenance"`
	// Rows is the number of records in the series.
	Rows int `yaml:"rows"`
	// StartDate is the earliest trade date in the series.
	StartDate string `yaml:"start_date,omitempty"`
	// EndDate is the latest trade date in the series.
	EndDate string `yaml:"end_date,omitempty"`
	// MinClose is the lowest closing price, rounded to two decimals.
	MinClose float64 `yaml:"min_close"`
	// MaxClose is the highest closing price, rounded to two decimals.
	MaxClose float64 `yaml:"max_close"`
	// MeanClose is the average closing price, rounded to two decimals.
	MeanClose float64 `yaml:"mean_close"`
}

type ComparisonSummary struct {
	// ID is the unique identifier for this comparison run.
	ID string `yaml:"id"`
	// GeneratedAt is when the comparison was executed.
	GeneratedAt time.Time `yaml:"generated_at"`
	// StockCode of the compared stock.
	StockCode int64 `yaml:"stock_code"`
	// Period label of the snapshots, weekly or daily.
	Period string `yaml:"period"`
	// UnprocessedPath is the path of the raw snapshot file.
	UnprocessedPath string `yaml:"unprocessed_path"`
	// ProcessedPath is the path of the processed snapshot file.
	ProcessedPath string `yaml:"processed_path"`
	// ChartPath is where the chart document was written.
	ChartPath string `yaml:"chart_path"`
	// Series summaries, raw series first.
	Series []SeriesSummary `yaml:"series"`
}

// NewComparisonSummary summarizes a comparison table, one entry per
// provenance with the raw series first.
func NewComparisonSummary(table ComparisonTable, stockCode int64, period, unprocessedPath, processedPath, chartPath string) ComparisonSummary {
	summary := ComparisonSummary{
		ID:              uuid.New().String(),
		GeneratedAt:     time.Now(),
		StockCode:       stockCode,
		Period:          period,
		UnprocessedPath: unprocessedPath,
		ProcessedPath:   processedPath,
		ChartPath:       chartPath,
	}

	for _, provenance := range []Provenance{ProvenanceRaw, ProvenanceProcessed} {
		summary.Series = append(summary.Series, summarizeSeries(provenance, table.Select(provenance)))
	}

	return summary
}

func summarizeSeries(provenance Provenance, series ComparisonTable) SeriesSummary {
	summary := SeriesSummary{
		Provenance: provenance,
		Rows:       len(series),
	}

	if len(series) == 0 {
		return summary
	}

	start := series[0].TradeDate
	end := series[0].TradeDate
	minClose := decimal.NewFromFloat(series[0].Close)
	maxClose := minClose
	sum := decimal.Zero

	for _, record := range series {
		if record.TradeDate.Before(start) {
			start = record.TradeDate
		}

		if record.TradeDate.After(end) {
			end = record.TradeDate
		}

		closeDec := decimal.NewFromFloat(record.Close)
		if closeDec.LessThan(minClose) {
			minClose = closeDec
		}

		if closeDec.GreaterThan(maxClose) {
			maxClose = closeDec
		}

		sum = sum.Add(closeDec)
	}

	summary.StartDate = start.Format(TradeDateLayout)
	summary.EndDate = end.Format(TradeDateLayout)
	summary.MinClose, _ = minClose.Round(2).Float64()
	summary.MaxClose, _ = maxClose.Round(2).Float64()
	summary.MeanClose, _ = sum.Div(decimal.NewFromInt(int64(len(series)))).Round(2).Float64()

	return summary
}

func WriteComparisonSummary(path string, summary ComparisonSummary) error {
	// Marshal the struct to YAML
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison summary to YAML: %w", err)
	}

	// Write the YAML data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write comparison summary to file: %w", err)
	}

	return nil
}
