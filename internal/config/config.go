package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pickr/internal/ingest"
	"github.com/rshade/pickr/internal/match"
	"github.com/rshade/pickr/internal/tui/layout"
)

// CurrentVersion is the configuration schema version written by Save.
const CurrentVersion = "1.0.0"

// supportedVersions is the schema range this build reads.
const supportedVersions = "^1"

// minHeight fits a header and two rows.
const minHeight = 3

// Default values for a fresh configuration.
const (
	defaultHeight    = 10
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	configFileName   = "config.yaml"
)

// Config is the pickr configuration file.
type Config struct {
	Version string              `yaml:"version"`
	UI      UIConfig            `yaml:"ui"`
	Input   InputConfig         `yaml:"input"`
	Theme   ThemeConfig         `yaml:"theme"`
	Keys    map[string][]string `yaml:"keys,omitempty"`
	Logging LoggingConfig       `yaml:"logging"`

	configPath string
}

// UIConfig controls the size and arrangement of the widget.
type UIConfig struct {
	// Height is the number of terminal rows the widget occupies.
	Height int `yaml:"height"`
	// MaxWidth bounds the list pane width; 0 means the terminal width.
	MaxWidth int `yaml:"max_width"`
	// Split is the list pane size when a preview is shown: "", "auto", "40" or "30%".
	Split          string `yaml:"split,omitempty"`
	SplitDirection string `yaml:"split_direction"`
	FilterMode     string `yaml:"filter_mode"`
	AltScreen      bool   `yaml:"alt_screen"`
}

// InputConfig controls how items are read and labelled.
type InputConfig struct {
	Format string `yaml:"format"`
	// Label is a gjson path selecting the label of structured records.
	Label string `yaml:"label,omitempty"`
	// Preview is a gjson path selecting the preview text; empty disables the preview pane.
	Preview string `yaml:"preview,omitempty"`
}

// ThemeConfig holds lipgloss color strings ("8", "#ff8700", ...).
type ThemeConfig struct {
	Border              string `yaml:"border"`
	HeaderActive        string `yaml:"header_active"`
	HeaderInactive      string `yaml:"header_inactive"`
	HighlightForeground string `yaml:"highlight_foreground"`
	HighlightBackground string `yaml:"highlight_background"`
	Marker              string `yaml:"marker"`
	ScrollBar           string `yaml:"scrollbar"`
}

// Default returns the built-in configuration, pointing at the default file location.
func Default() *Config {
	cfg := &Config{
		Version: CurrentVersion,
		UI: UIConfig{
			Height:         defaultHeight,
			SplitDirection: layout.Horizontal.String(),
			FilterMode:     match.ModeSubstring,
		},
		Input: InputConfig{Format: string(ingest.FormatLines)},
		Theme: ThemeConfig{
			Border:              "8",
			HeaderActive:        "15",
			HeaderInactive:      "8",
			HighlightForeground: "15",
			HighlightBackground: "1",
			Marker:              "3",
			ScrollBar:           "8",
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}

	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		cfg.Logging.File = filepath.Join(dir, "logs", "pickr.log")
	}
	return cfg
}

// New returns the configuration from the default location, or the built-in
// defaults when that file is missing or unreadable.
func New() *Config {
	cfg := Default()
	if cfg.configPath == "" {
		return cfg
	}
	loaded, err := Load(cfg.configPath)
	if err != nil {
		return cfg
	}
	return loaded
}

// Load reads the configuration at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigPath returns the file the configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if err := validateVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	if c.UI.Height < minHeight {
		errs = append(errs, fmt.Errorf("ui.height must be at least %d, got %d", minHeight, c.UI.Height))
	}
	if c.UI.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("ui.max_width must not be negative, got %d", c.UI.MaxWidth))
	}
	if _, err := c.SplitDimension(); err != nil {
		errs = append(errs, fmt.Errorf("ui.split: %w", err))
	}
	if _, err := layout.ParseDirection(c.UI.SplitDirection); err != nil {
		errs = append(errs, fmt.Errorf("ui.split_direction: %w", err))
	}
	if _, err := match.ByName(c.UI.FilterMode); err != nil {
		errs = append(errs, fmt.Errorf("ui.filter_mode: %w", err))
	}
	if _, err := ingest.ParseFormat(c.Input.Format); err != nil {
		errs = append(errs, fmt.Errorf("input.format: %w", err))
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: at least one key is required", action))
		}
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}

	return errors.Join(errs...)
}

func validateVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("version %s is not supported (need %s)", version, supportedVersions)
	}
	return nil
}

// SplitDimension returns the explicit list pane size, or nil for an automatic split.
func (c *Config) SplitDimension() (*layout.Dimension, error) {
	split := strings.TrimSpace(c.UI.Split)
	if split == "" || strings.EqualFold(split, "auto") {
		return nil, nil //nolint:nilnil // nil dimension means automatic
	}
	d, err := layout.ParseDimension(split)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Environment variables that override configuration values.
const (
	EnvLogLevel   = "PICKR_LOG_LEVEL"
	EnvLogFormat  = "PICKR_LOG_FORMAT"
	EnvLogFile    = "PICKR_LOG_FILE"
	EnvHeight     = "PICKR_HEIGHT"
	EnvFilterMode = "PICKR_FILTER_MODE"
	EnvSplit      = "PICKR_SPLIT"
)

// ApplyEnv overrides settings from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookup(EnvFilterMode); ok && v != "" {
		c.UI.FilterMode = v
	}
	if v, ok := lookup(EnvSplit); ok && v != "" {
		c.UI.Split = v
	}
	if v, ok := lookup(EnvHeight); ok && v != "" {
		height, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeight, err)
		}
		c.UI.Height = height
	}
	return nil
}
