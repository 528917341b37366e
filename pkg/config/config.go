package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	validator "github.com/go-playground/validator/v10"
	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	CatalogConfig struct {
		ImageFolder  string `yaml:"image_folder" validate:"required_without=ConfigURL"`
		ConfigURL    string `yaml:"config_url"`
		MaxIndex     int    `yaml:"max_index" validate:"gte=0"`
		GapTolerance int    `yaml:"gap_tolerance" validate:"gte=0"`
	}

	ViewerConfig struct {
		Preload  bool   `yaml:"preload"`
		Language string `yaml:"language" validate:"omitempty,bcp47_language_tag"`
		Title    string `yaml:"title"`
	}

	HTTPConfig struct {
		Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
		UserAgent string        `yaml:"user_agent"`
	}

	JournalConfig struct {
		Path string `yaml:"path"`
	}

	Config struct {
		Catalog CatalogConfig `yaml:"catalog"`
		Viewer  ViewerConfig  `yaml:"viewer"`
		HTTP    HTTPConfig    `yaml:"http"`
		Journal JournalConfig `yaml:"journal"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// only fields we defined are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration superimposes the file at path, if any, on the built-in
// defaults and validates the result.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if cfg, err = unmarshalConfig(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to process configuration file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg after command line overrides were applied.
func (cfg *Config) Validate() error {
	if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkLogging)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Default returns the built-in configuration as YAML.
func Default() []byte {
	return defaultConfig
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// file logging needs somewhere to write
func checkLogging(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	file := cfg.Logging.FileLogger
	if file.Level != "none" && len(file.Destination) == 0 {
		sl.ReportError(file.Destination, "Destination", "destination", "required_with_level", "")
	}
}
