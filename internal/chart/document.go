package chart

import (
	"encoding/json"
	"fmt"

	"github.com/pricelens-lab/pricelens/internal/types"
	"github.com/pricelens-lab/pricelens/internal/version"
)

// Vega-Lite document model, limited to what a comparison chart uses. The
// encoding is shared by both layers; the interval param bound to scales on
// the line layer gives the rendered chart pan and zoom.

type Document struct {
	Schema   string   `json:"$schema"`
	Title    string   `json:"title"`
	Data     Data     `json:"data"`
	Encoding Encoding `json:"encoding"`
	Layer    []Layer  `json:"layer"`
}

type Data struct {
	Values []DataRow `json:"values"`
}

// DataRow is one inline data point of the document.
type DataRow struct {
	TradeDate  string  `json:"trade_date"`
	Close      float64 `json:"close"`
	Provenance string  `json:"provenance"`
}

type Encoding struct {
	X       PositionChannel  `json:"x"`
	Y       PositionChannel  `json:"y"`
	Color   ColorChannel     `json:"color"`
	Tooltip []TooltipChannel `json:"tooltip"`
}

type PositionChannel struct {
	Field string `json:"field"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

type ColorChannel struct {
	Field string      `json:"field"`
	Type  string      `json:"type"`
	Title string      `json:"title,omitempty"`
	Scale *ColorScale `json:"scale,omitempty"`
}

// ColorScale pins explicit series colors; domain and range are index aligned.
type ColorScale struct {
	Domain []string `json:"domain"`
	Range  []string `json:"range"`
}

type TooltipChannel struct {
	Field  string `json:"field"`
	Type   string `json:"type"`
	Title  string `json:"title,omitempty"`
	Format string `json:"format,omitempty"`
}

type Layer struct {
	Mark   Mark    `json:"mark"`
	Params []Param `json:"params,omitempty"`
}

type Mark struct {
	Type    string  `json:"type"`
	Opacity float64 `json:"opacity,omitempty"`
	Size    float64 `json:"size,omitempty"`
}

// Param is a Vega-Lite selection parameter in its string shorthand form.
type Param struct {
	Name   string `json:"name"`
	Select string `json:"select"`
	Bind   string `json:"bind"`
}

// NewDocument builds the layered line+point document for a comparison table.
// The build is pure: the same table and arguments always produce the same
// document, and an empty table yields a document with no data values.
func NewDocument(table types.ComparisonTable, stockCode int64, period string, config Config) *Document {
	values := make([]DataRow, 0, len(table))

	for _, record := range table {
		values = append(values, DataRow{
			TradeDate:  record.TradeDate.Format(types.TradeDateLayout),
			Close:      record.Close,
			Provenance: record.Provenance.Label(),
		})
	}

	color := ColorChannel{
		Field: "provenance",
		Type:  "nominal",
		Title: config.LegendTitle,
	}
	if config.RawColor != "" && config.ProcessedColor != "" {
		color.Scale = &ColorScale{
			Domain: []string{types.ProvenanceRaw.Label(), types.ProvenanceProcessed.Label()},
			Range:  []string{config.RawColor, config.ProcessedColor},
		}
	}

	return &Document{
		Schema: version.SchemaURL(config.SchemaVersion),
		Title:  fmt.Sprintf("Stock %d: %s comparison of closing price before/after processing", stockCode, period),
		Data:   Data{Values: values},
		Encoding: Encoding{
			X:     PositionChannel{Field: "trade_date", Type: "temporal", Title: config.XTitle},
			Y:     PositionChannel{Field: "close", Type: "quantitative", Title: config.YTitle},
			Color: color,
			Tooltip: []TooltipChannel{
				{Field: "trade_date", Type: "temporal", Title: "Date", Format: "%Y-%m-%d"},
				{Field: "close", Type: "quantitative", Title: "Close", Format: ".2f"},
				{Field: "provenance", Type: "nominal", Title: config.LegendTitle},
			},
		},
		Layer: []Layer{
			{
				Mark:   Mark{Type: "line"},
				Params: []Param{{Name: "grid", Select: "interval", Bind: "scales"}},
			},
			{
				Mark: Mark{Type: "point", Opacity: config.PointOpacity, Size: config.PointSize},
			},
		},
	}
}

// JSON serializes the document as indented Vega-Lite JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
