package chart

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/pricelens-lab/pricelens/internal/logger"
	"github.com/pricelens-lab/pricelens/internal/types"
	"github.com/pricelens-lab/pricelens/pkg/errors"
	"go.uber.org/zap"
)

// Handle identifies a rendered chart. The document stays usable in memory
// whether or not it was serialized to disk.
type Handle struct {
	// ID is the unique identifier for this render.
	ID string
	// StockCode the chart compares.
	StockCode int64
	// Period label of the compared snapshots.
	Period string
	// Document is the rendered Vega-Lite document.
	Document *Document
	// OutputPath is where the document was serialized, if it was.
	OutputPath optional.Option[string]
}

type Renderer struct {
	config Config
	logger *logger.Logger
}

// NewRenderer creates a renderer with the given style. The style is validated
// once here so Render can assume it is usable.
func NewRenderer(config Config, logger *logger.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		config: config,
		logger: logger,
	}, nil
}

// Render builds the comparison chart document and, when an output path is
// given, serializes it there. The extension picks the format: .json writes
// the Vega-Lite document, .html a standalone vega-embed page. Rendering with
// no output path only builds the in-memory document.
func (r *Renderer) Render(table types.ComparisonTable, stockCode int64, period string, outputPath optional.Option[string]) (Handle, error) {
	document := NewDocument(table, stockCode, period, r.config)

	handle := Handle{
		ID:         uuid.New().String(),
		StockCode:  stockCode,
		Period:     period,
		Document:   document,
		OutputPath: outputPath,
	}

	if outputPath.IsNone() {
		return handle, nil
	}

	path := outputPath.Unwrap()
	if err := r.save(document, path); err != nil {
		return Handle{}, err
	}

	r.logger.Info("Chart saved", zap.String("path", path))

	return handle, nil
}

// save serializes the document in the format the path extension names.
func (r *Renderer) save(document *Document, path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = document.JSON()
	case ".html":
		data, err = renderHTML(document)
	default:
		return errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported chart output format %q, use .json or .html", filepath.Ext(path))
	}

	if err != nil {
		return errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to serialize chart document", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(errors.ErrCodeChartWriteFailed, err, "failed to write chart to %s", path)
	}

	return nil
}
