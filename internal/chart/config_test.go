package chart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pricelens-lab/pricelens/internal/version"
	"github.com/pricelens-lab/pricelens/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	tempDir, err := os.MkdirTemp("", "chart_config_test")
	suite.Require().NoError(err)
	suite.tempDir = tempDir
}

func (suite *ConfigTestSuite) TearDownTest() {
	os.RemoveAll(suite.tempDir)
}

func (suite *ConfigTestSuite) writeStyle(content string) string {
	path := filepath.Join(suite.tempDir, "style.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	suite.Require().NoError(err)

	return path
}

func (suite *ConfigTestSuite) TestDefaultConfig() {
	config := DefaultConfig()

	suite.Equal(version.SupportedSchemaVersion, config.SchemaVersion)
	suite.Equal("Trade Date", config.XTitle)
	suite.Equal("Closing Price", config.YTitle)
	suite.Equal("Provenance", config.LegendTitle)
	suite.Equal(0.6, config.PointOpacity)
	suite.Equal(30.0, config.PointSize)
	suite.Empty(config.RawColor)
	suite.Empty(config.ProcessedColor)
}

func (suite *ConfigTestSuite) TestValidateDefault() {
	config := DefaultConfig()
	suite.NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestValidateZeroValue() {
	config := Config{}

	err := config.Validate()
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
	suite.True(errors.IsValidationError(err))
}

func (suite *ConfigTestSuite) TestValidateWrongSchemaMajor() {
	config := DefaultConfig()
	config.SchemaVersion = "4.17.0"

	err := config.Validate()
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidVersion))
	suite.Contains(err.Error(), "major version mismatch")
}

func (suite *ConfigTestSuite) TestValidateOpacityOutOfRange() {
	config := DefaultConfig()
	config.PointOpacity = 1.5

	suite.Error(config.Validate())
}

func (suite *ConfigTestSuite) TestValidateColorPair() {
	config := DefaultConfig()
	config.RawColor = "steelblue"

	// A lone raw color is rejected
	suite.Error(config.Validate())

	config.ProcessedColor = "orange"
	suite.NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestLoadConfigOverridesDefaults() {
	path := suite.writeStyle(`
y_title: Close (CNY)
point_size: 45
`)

	config, err := LoadConfig(path)
	suite.Require().NoError(err)

	// Overridden fields
	suite.Equal("Close (CNY)", config.YTitle)
	suite.Equal(45.0, config.PointSize)

	// Everything else keeps its default
	suite.Equal("Trade Date", config.XTitle)
	suite.Equal(0.6, config.PointOpacity)
	suite.Equal(version.SupportedSchemaVersion, config.SchemaVersion)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	_, err := LoadConfig(filepath.Join(suite.tempDir, "nope.yaml"))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeFileNotFound))
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := suite.writeStyle("point_size: [not a number")

	_, err := LoadConfig(path)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestLoadConfigRejectsWrongSchema() {
	path := suite.writeStyle("schema_version: 6.0.0")

	_, err := LoadConfig(path)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidVersion))
}

func (suite *ConfigTestSuite) TestGenerateSchema() {
	config := DefaultConfig()
	schema, err := config.GenerateSchema()

	suite.NoError(err)
	suite.NotNil(schema)
	suite.Equal("comparison-chart-style", schema.Title)
	suite.Equal("Style configuration schema for comparison charts", schema.Description)
	suite.Equal("http://json-schema.org/draft-07/schema#", schema.Version)
}

func (suite *ConfigTestSuite) TestGenerateSchemaJSON() {
	config := DefaultConfig()
	schemaJSON, err := config.GenerateSchemaJSON()

	suite.NoError(err)
	suite.NotEmpty(schemaJSON)

	// Verify it's valid JSON
	var result map[string]interface{}
	err = json.Unmarshal([]byte(schemaJSON), &result)
	suite.NoError(err)

	// Check schema properties
	suite.Contains(result, "title")
	suite.Equal("comparison-chart-style", result["title"])
}
