package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/ipfresh/internal/common"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	Mode             string           `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,mode"`
	SourceURLs       []string         `json:"urls,omitempty" yaml:"urls,omitempty" validate:"required,min=1,urls"`
	FetcherConfig    FetcherConfig    `json:"fetcher_config,omitempty" yaml:"fetcher_config,omitempty"`
	AggregatorConfig AggregatorConfig `json:"aggregator_config,omitempty" yaml:"aggregator_config,omitempty"`
	StorageConfig    StorageConfig    `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	SchedulerConfig  SchedulerConfig  `json:"scheduler_config,omitempty" yaml:"scheduler_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Mode:             "onetime",
		SourceURLs:       append([]string(nil), DefaultSourceURLs...),
		FetcherConfig:    NewDefaultFetcherConfig(),
		AggregatorConfig: NewDefaultAggregatorConfig(),
		StorageConfig:    NewDefaultStorageConfig(),
		SchedulerConfig:  NewDefaultSchedulerConfig(),
		LogConfig:        NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both JSON
// and YAML formats. A missing default-location file or a malformed file is not
// fatal: the defaults are returned and a warning is logged. Only an explicitly
// provided path that does not exist is reported as an error, so the caller can
// distinguish a typo'd -config flag from an optional absent file.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" {
		if _, err := os.Stat(providedPath); err != nil {
			return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
		}
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warn().Err(err).Str("config_file", filePath).Msg("Failed to read config file, using defaults")
		return NewDefaultGlobalConfig(), nil
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		logger.Warn().Err(err).Str("config_file", filePath).Msg("Failed to parse config file, using defaults")
		return NewDefaultGlobalConfig(), nil
	}

	return cfg, nil
}

// parseConfigContent unmarshals config data over the defaults already in cfg,
// so fields absent from the file keep their default values.
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.WrapErrorf(err, "failed to unmarshal YAML config '%s'", filePath)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return common.WrapErrorf(err, "failed to unmarshal JSON config '%s'", filePath)
		}
	default:
		// Try YAML first (it is a superset of our JSON configs), then JSON.
		if yamlErr := yaml.Unmarshal(data, cfg); yamlErr != nil {
			if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
				return common.NewError("unsupported config format for file '%s'", filePath)
			}
		}
	}
	return nil
}
