package comparison

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/pricelens-lab/pricelens/internal/chart"
	"github.com/pricelens-lab/pricelens/internal/dataset"
	"github.com/pricelens-lab/pricelens/internal/logger"
	"github.com/pricelens-lab/pricelens/internal/types"
	"github.com/pricelens-lab/pricelens/pkg/errors"
	"go.uber.org/zap"
)

// ClientConfig holds the configuration for the comparison client.
type ClientConfig struct {
	// Style controls the look of rendered charts. Use chart.DefaultConfig()
	// unless a style file was loaded.
	Style chart.Config
}

// CompareParams holds the parameters for a snapshot comparison request.
type CompareParams struct {
	StockCode       int64      `validate:"required,gt=0"`
	ProcessedPath   string     `validate:"required"`
	UnprocessedPath string     `validate:"required"`
	Period          PeriodType `validate:"required,oneof=weekly daily"`
	// OutputPath overrides the derived chart path when set.
	OutputPath optional.Option[string]
}

// Client compares the raw and processed snapshots of a stock's closing price
// history and renders the result as a chart.
type Client struct {
	config     ClientConfig
	validate   *validator.Validate
	renderer   *chart.Renderer
	logger     *logger.Logger
	onProgress dataset.ProgressFn
	newLoader  func() (dataset.Loader, error)
}

// NewClient creates a new comparison client with the given configuration.
func NewClient(config ClientConfig, onProgress dataset.ProgressFn) (*Client, error) {
	log, err := logger.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	renderer, err := chart.NewRenderer(config.Style, log)
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:     config,
		validate:   validator.New(),
		renderer:   renderer,
		logger:     log,
		onProgress: onProgress,
	}
	client.newLoader = func() (dataset.Loader, error) {
		return dataset.NewLoader(client.logger, client.onProgress)
	}

	return client, nil
}

// Compare loads both snapshots of the requested stock, builds the comparison
// table and renders it into a chart file. A run summary is written next to the
// chart. The context can be used to cancel the snapshot reads.
func (c *Client) Compare(ctx context.Context, params CompareParams) (chart.Handle, error) {
	// Validate comparison parameters before any file is touched
	if err := c.validate.Struct(params); err != nil {
		return chart.Handle{}, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid comparison parameters", err)
	}

	chartPath := fmt.Sprintf("stock_%d_%s_comparison_chart.json", params.StockCode, params.Period)
	if params.OutputPath.IsSome() {
		chartPath = params.OutputPath.Unwrap()
	}

	loader, err := c.newLoader()
	if err != nil {
		return chart.Handle{}, fmt.Errorf("failed to create snapshot loader: %w", err)
	}

	defer func() {
		if err := loader.Close(); err != nil {
			c.logger.Warn("Failed to close snapshot loader", zap.Error(err))
		}
	}()

	table, err := loader.Load(ctx, params.ProcessedPath, params.UnprocessedPath, params.StockCode)
	if err != nil {
		return chart.Handle{}, err
	}

	handle, err := c.renderer.Render(table, params.StockCode, string(params.Period), optional.Some(chartPath))
	if err != nil {
		return chart.Handle{}, err
	}

	summary := types.NewComparisonSummary(table, params.StockCode, string(params.Period), params.UnprocessedPath, params.ProcessedPath, chartPath)
	summaryPath := filepath.Join(filepath.Dir(chartPath), fmt.Sprintf("stock_%d_%s_comparison_summary.yaml", params.StockCode, params.Period))

	if err := types.WriteComparisonSummary(summaryPath, summary); err != nil {
		return chart.Handle{}, fmt.Errorf("failed to write comparison summary: %w", err)
	}

	c.logger.Info("Comparison completed",
		zap.Int64("stock_code", params.StockCode),
		zap.String("period", string(params.Period)),
		zap.Int("rows", len(table)),
		zap.String("chart", chartPath),
		zap.String("summary", summaryPath))

	return handle, nil
}
