package chart

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/pricelens-lab/pricelens/internal/version"
	"github.com/pricelens-lab/pricelens/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls the cosmetics of rendered comparison charts. Start from
// DefaultConfig; the zero value fails validation.
type Config struct {
	// SchemaVersion selects the Vega-Lite schema line of rendered documents.
	SchemaVersion string `yaml:"schema_version" json:"schema_version" jsonschema:"title=Schema Version,description=Vega-Lite schema version documents are rendered against" validate:"required"`
	// XTitle is the x axis title.
	XTitle string `yaml:"x_title" json:"x_title" jsonschema:"title=X Axis Title,description=Title of the trade date axis" validate:"required"`
	// YTitle is the y axis title.
	YTitle string `yaml:"y_title" json:"y_title" jsonschema:"title=Y Axis Title,description=Title of the closing price axis" validate:"required"`
	// LegendTitle names the provenance legend and tooltip entry.
	LegendTitle string `yaml:"legend_title" json:"legend_title" jsonschema:"title=Legend Title,description=Title of the provenance legend" validate:"required"`
	// PointOpacity of the point layer.
	PointOpacity float64 `yaml:"point_opacity" json:"point_opacity" jsonschema:"title=Point Opacity,description=Opacity of the point layer,minimum=0,maximum=1" validate:"gt=0,lte=1"`
	// PointSize of the point layer.
	PointSize float64 `yaml:"point_size" json:"point_size" jsonschema:"title=Point Size,description=Size of the point layer marks,minimum=1" validate:"gte=1"`
	// RawColor optionally pins the raw series color. Set together with
	// ProcessedColor or not at all.
	RawColor string `yaml:"raw_color,omitempty" json:"raw_color,omitempty" jsonschema:"title=Raw Series Color,description=Optional CSS color of the raw series" validate:"required_with=ProcessedColor"`
	// ProcessedColor optionally pins the processed series color.
	ProcessedColor string `yaml:"processed_color,omitempty" json:"processed_color,omitempty" jsonschema:"title=Processed Series Color,description=Optional CSS color of the processed series" validate:"required_with=RawColor"`
}

// DefaultConfig returns the chart style used when no style file is given.
func DefaultConfig() Config {
	return Config{
		SchemaVersion: version.SupportedSchemaVersion,
		XTitle:        "Trade Date",
		YTitle:        "Closing Price",
		LegendTitle:   "Provenance",
		PointOpacity:  0.6,
		PointSize:     30,
	}
}

// Validate checks the config before any chart is rendered.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid chart style", err)
	}

	if err := version.CheckSchemaCompatibility(c.SchemaVersion); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidVersion, "unsupported chart schema version", err)
	}

	return nil
}

// LoadConfig reads a YAML style file, applying its values over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeFileNotFound, err, "style file not found: %s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse style file", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// GenerateSchema generates a JSON schema for the chart style Config
func (c *Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
	}

	// Generate schema from Config struct
	schema := reflector.Reflect(c)

	// Set schema metadata
	schema.Title = "comparison-chart-style"
	schema.Description = "Style configuration schema for comparison charts"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the chart style Config
func (c *Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}
