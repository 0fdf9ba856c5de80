package mocks

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// SnapshotRow is one line of a snapshot CSV export.
type SnapshotRow struct {
	StockCode int64
	TradeDate time.Time
	Close     float64
	Volume    float64
}

// SnapshotGenerator generates realistic closing price history for testing
// and benchmarking.
type SnapshotGenerator struct {
	rng *rand.Rand
}

// NewSnapshotGenerator creates a new SnapshotGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewSnapshotGenerator(seed int64) *SnapshotGenerator {
	return &SnapshotGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// SnapshotConfig configures how snapshot rows are generated.
type SnapshotConfig struct {
	// StockCode identifies the stock the rows belong to
	StockCode int64
	// StartDate is the first trade date of the series
	StartDate time.Time
	// Step is the duration between trade dates (7 days for weekly exports)
	Step time.Duration
	// Count is the number of rows to generate
	Count int
	// InitialClose is the starting closing price
	InitialClose float64
	// Volatility controls price movement (0.02 = 2% typical weekly volatility)
	Volatility float64
	// Trend is the drift factor (-0.1 to 0.1 for bearish to bullish)
	Trend float64
	// VolumeBase is the average volume per row
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
}

// DefaultSnapshotConfig returns a sensible default configuration for a year
// of weekly rows.
func DefaultSnapshotConfig() SnapshotConfig {
	return SnapshotConfig{
		StockCode:      920225,
		StartDate:      time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Step:           7 * 24 * time.Hour,
		Count:          52,
		InitialClose:   10.5,
		Volatility:     0.02, // 2% per week
		Trend:          0.05, // mildly bullish
		VolumeBase:     100000,
		VolumeVariance: 0.3,
	}
}

// Generate creates a slice of SnapshotRow based on the configuration.
// Closing prices follow a geometric Brownian motion model for realistic
// movements.
func (g *SnapshotGenerator) Generate(config SnapshotConfig) []SnapshotRow {
	rows := make([]SnapshotRow, config.Count)
	currentClose := config.InitialClose
	currentDate := config.StartDate

	for i := 0; i < config.Count; i++ {
		// Using Box-Muller transform for normal distribution
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		// Price change with trend and volatility
		priceChange := config.Volatility * z
		drift := config.Trend / float64(config.Count) // Distribute trend across rows

		close := currentClose * (1 + priceChange + drift)
		if close <= 0 {
			close = currentClose * 0.99 // Prevent negative prices
		}

		// Volume with variance
		volumeVariation := 1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance
		volume := config.VolumeBase * volumeVariation
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		rows[i] = SnapshotRow{
			StockCode: config.StockCode,
			TradeDate: currentDate,
			Close:     roundToDecimals(close, 4),
			Volume:    roundToDecimals(volume, 2),
		}

		// Update for next iteration
		currentClose = close
		currentDate = currentDate.Add(config.Step)
	}

	return rows
}

// GenerateMultiStock generates rows for multiple stock codes.
func (g *SnapshotGenerator) GenerateMultiStock(stockCodes []int64, baseConfig SnapshotConfig) []SnapshotRow {
	var allRows []SnapshotRow

	for _, stockCode := range stockCodes {
		config := baseConfig
		config.StockCode = stockCode
		// Vary initial price and volatility slightly per stock
		config.InitialClose = baseConfig.InitialClose * (0.8 + g.rng.Float64()*0.4)
		config.Volatility = baseConfig.Volatility * (0.8 + g.rng.Float64()*0.4)

		stockRows := g.Generate(config)
		allRows = append(allRows, stockRows...)
	}

	return allRows
}

// Cleaned derives the processed counterpart of a raw series: closes are
// smoothed with a centered three point moving average and rounded to two
// decimals, the way the upstream cleaning pipeline exports them. Dates and
// stock codes are unchanged.
func Cleaned(rows []SnapshotRow) []SnapshotRow {
	cleaned := make([]SnapshotRow, len(rows))

	for i, row := range rows {
		sum := row.Close
		n := 1.0

		if i > 0 && rows[i-1].StockCode == row.StockCode {
			sum += rows[i-1].Close
			n++
		}

		if i < len(rows)-1 && rows[i+1].StockCode == row.StockCode {
			sum += rows[i+1].Close
			n++
		}

		cleaned[i] = SnapshotRow{
			StockCode: row.StockCode,
			TradeDate: row.TradeDate,
			Close:     roundToDecimals(sum/n, 2),
			Volume:    row.Volume,
		}
	}

	return cleaned
}

// GenerateWeeklyYear is a convenience function to generate a year of weekly
// rows with default settings and a fixed seed.
func GenerateWeeklyYear(stockCode int64) []SnapshotRow {
	gen := NewSnapshotGenerator(42) // Fixed seed for reproducibility
	config := DefaultSnapshotConfig()
	config.StockCode = stockCode
	return gen.Generate(config)
}

// SnapshotCSVOptions controls how snapshot rows are written to disk.
type SnapshotCSVOptions struct {
	// DateLayout formats trade dates. Defaults to "2006-01-02".
	DateLayout string
	// IncludeVolume adds a volume column to the export
	IncludeVolume bool
}

// WriteSnapshotCSV writes rows to path as a snapshot CSV export with a
// header line.
func WriteSnapshotCSV(path string, rows []SnapshotRow, opts SnapshotCSVOptions) error {
	layout := opts.DateLayout
	if layout == "" {
		layout = "2006-01-02"
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"stock_code", "trade_date", "close"}
	if opts.IncludeVolume {
		header = append(header, "volume")
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.StockCode, 10),
			row.TradeDate.Format(layout),
			strconv.FormatFloat(row.Close, 'f', -1, 64),
		}
		if opts.IncludeVolume {
			record = append(record, strconv.FormatFloat(row.Volume, 'f', -1, 64))
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write snapshot row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
