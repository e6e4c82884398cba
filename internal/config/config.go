// Package config loads the demo pipeline configuration: environment
// variables first, an optional YAML file layered on top, then struct
// validation.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables, e.g. TABLEKIT_LOGGING_LEVEL.
const envPrefix = "TABLEKIT"

// Config is the complete demo configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout stderr file"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/tablekit.log"`
}

// PipelineConfig describes the demonstration pipeline inputs.
type PipelineConfig struct {
	DataDir     string   `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	OutDir      string   `yaml:"out_dir" envconfig:"OUT_DIR" default:"out"`
	Files       []string `yaml:"files" envconfig:"FILES"`
	DropColumns []string `yaml:"drop_columns" envconfig:"DROP_COLUMNS"`
	TopN        int      `yaml:"top_n" envconfig:"TOP_N" default:"5" validate:"min=1"`
	Quantile    float64  `yaml:"quantile" envconfig:"QUANTILE" default:"0.75" validate:"gte=0,lte=1"`
	RowCeiling  int      `yaml:"row_ceiling" envconfig:"ROW_CEILING" default:"100000" validate:"min=1"`
}

// Load builds the configuration. Environment variables and struct defaults
// are applied first; the YAML file at path, when it exists, overrides
// them. An empty path skips the file step.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file, keep env/defaults.
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
