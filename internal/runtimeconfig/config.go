package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrLoggingProviderRequired = errors.New("wxr config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("wxr config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("wxr config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("wxr config: logging format is invalid")
var ErrOutputFormatInvalid = errors.New("wxr config: output format is invalid")
var ErrCommandTimeoutInvalid = errors.New("wxr config: command timeout must be zero or positive")

// ErrSettingsUnreadable is returned when a settings file cannot be read or decoded.
var ErrSettingsUnreadable = errors.New("wxr config: settings file could not be loaded")

// DefaultCommandTimeout bounds a single parse command when none is configured.
const DefaultCommandTimeout = 30 * time.Second

// Config aggregates the runtime options of the export parser.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Parser   ParserConfig   `yaml:"parser"`
	Output   OutputConfig   `yaml:"output"`
	Commands CommandsConfig `yaml:"commands"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// ParserConfig tunes the item pass.
type ParserConfig struct {
	// NormalizeTitleSlugs runs slugs derived from titles through go-slug.
	NormalizeTitleSlugs bool `yaml:"normalize_title_slugs"`
}

// OutputConfig controls how results are rendered by the CLI.
type OutputConfig struct {
	Format    string `yaml:"format"`
	ExportDir string `yaml:"export_dir"`
}

// CommandsConfig controls command execution.
type CommandsConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns console logging at info level, JSON output and the
// default command timeout.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Enabled:  true,
			Provider: "console",
			Level:    "info",
		},
		Output: OutputConfig{
			Format: "json",
		},
		Commands: CommandsConfig{
			Timeout: DefaultCommandTimeout,
		},
	}
}

// Load reads a YAML settings file over DefaultConfig and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrSettingsUnreadable, err)
	}
	return Decode(data)
}

// Decode parses YAML settings over DefaultConfig and validates the result.
func Decode(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrSettingsUnreadable, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures the configuration is internally consistent.
func (cfg Config) Validate() error {
	if cfg.Logging.Enabled {
		provider := NormalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	if format := strings.TrimSpace(cfg.Output.Format); format != "" && !IsSupportedOutputFormat(format) {
		return fmt.Errorf("%w: %s", ErrOutputFormatInvalid, format)
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	return nil
}

// NormalizeProvider lowercases and trims a logging provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

// IsSupportedOutputFormat reports whether format names a known renderer.
func IsSupportedOutputFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "yaml", "summary":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
