package config

import "errors"

// Config is the top-level configuration struct for depscan.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Entries  []string       `mapstructure:"entries"`
	Output   OutputConfig   `mapstructure:"output"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
}

// OutputConfig holds serialization settings for the final graph document.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
}

// AnalyzerConfig holds per-file analysis settings.
type AnalyzerConfig struct {
	SkipUnknown bool  `mapstructure:"skip_unknown"`
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// Output formats accepted by output.format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultOutputFormat        = FormatJSON
	DefaultOutputPretty        = true
	DefaultAnalyzerSkipUnknown = false
	DefaultAnalyzerMaxFileSize = int64(0)
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidOutputFormat indicates output.format is not a known format.
	ErrInvalidOutputFormat = errors.New("output.format must be json or yaml")
	// ErrInvalidMaxFileSize indicates the max file size is negative.
	ErrInvalidMaxFileSize = errors.New("analyzer.max_file_size must be non-negative")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Output.Format != FormatJSON && c.Output.Format != FormatYAML {
		return ErrInvalidOutputFormat
	}

	if c.Analyzer.MaxFileSize < 0 {
		return ErrInvalidMaxFileSize
	}

	return nil
}
