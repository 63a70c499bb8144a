package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pickr/internal/config"
)

func TestDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	cfg := config.Default()

	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, 10, cfg.UI.Height)
	assert.Equal(t, "horizontal", cfg.UI.SplitDirection)
	assert.Equal(t, "substring", cfg.UI.FilterMode)
	assert.Equal(t, "lines", cfg.Input.Format)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, filepath.Join(home, "logs", "pickr.log"), cfg.Logging.File)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath())
	assert.Equal(t, 10, cfg.UI.Height)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ui:
  height: 15
  split: 30%
input:
  format: json
  label: metadata.name
`), 0600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.UI.Height)
	assert.Equal(t, "30%", cfg.UI.Split)
	assert.Equal(t, "substring", cfg.UI.FilterMode)
	assert.Equal(t, "json", cfg.Input.Format)
	assert.Equal(t, "metadata.name", cfg.Input.Label)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [oops"), 0600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.Default()
	cfg.SetConfigPath(path)
	cfg.UI.FilterMode = "fuzzy"
	cfg.Keys = map[string][]string{"cancel": {"ctrl+g", "esc"}}
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fuzzy", loaded.UI.FilterMode)
	assert.Equal(t, []string{"ctrl+g", "esc"}, loaded.Keys["cancel"])
}

func TestSave_NoPath(t *testing.T) {
	cfg := &config.Config{}
	require.Error(t, cfg.Save())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*config.Config) {}},
		{name: "empty version allowed", mutate: func(c *config.Config) { c.Version = "" }},
		{name: "unsupported version", mutate: func(c *config.Config) { c.Version = "2.0.0" }, wantErr: "not supported"},
		{name: "garbage version", mutate: func(c *config.Config) { c.Version = "one" }, wantErr: "version"},
		{name: "height too small", mutate: func(c *config.Config) { c.UI.Height = 2 }, wantErr: "ui.height"},
		{name: "negative max width", mutate: func(c *config.Config) { c.UI.MaxWidth = -1 }, wantErr: "ui.max_width"},
		{name: "percent split", mutate: func(c *config.Config) { c.UI.Split = "40%" }},
		{name: "auto split", mutate: func(c *config.Config) { c.UI.Split = "auto" }},
		{name: "bad split", mutate: func(c *config.Config) { c.UI.Split = "wide" }, wantErr: "ui.split"},
		{name: "bad direction", mutate: func(c *config.Config) { c.UI.SplitDirection = "diagonal" }, wantErr: "ui.split_direction"},
		{name: "bad filter mode", mutate: func(c *config.Config) { c.UI.FilterMode = "regex" }, wantErr: "ui.filter_mode"},
		{name: "bad format", mutate: func(c *config.Config) { c.Input.Format = "xml" }, wantErr: "input.format"},
		{name: "empty key binding", mutate: func(c *config.Config) { c.Keys = map[string][]string{"accept": nil} }, wantErr: "keys.accept"},
		{name: "bad log level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvHome, t.TempDir())
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	cfg := config.Default()
	cfg.UI.Height = 0
	cfg.Input.Format = "csv"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.height")
	assert.Contains(t, err.Error(), "input.format")
}

func TestSplitDimension(t *testing.T) {
	tests := []struct {
		split       string
		wantNil     bool
		wantPercent bool
		wantValue   int
	}{
		{split: "", wantNil: true},
		{split: "Auto", wantNil: true},
		{split: "40", wantValue: 40},
		{split: "30%", wantPercent: true, wantValue: 30},
	}

	for _, tt := range tests {
		t.Run(tt.split, func(t *testing.T) {
			cfg := &config.Config{UI: config.UIConfig{Split: tt.split}}
			d, err := cfg.SplitDimension()
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, d)
				return
			}
			require.NotNil(t, d)
			assert.Equal(t, tt.wantPercent, d.IsPercent())
			assert.Equal(t, tt.wantValue, d.Value())
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvLogLevel:   "debug",
		config.EnvLogFormat:  "json",
		config.EnvLogFile:    "",
		config.EnvHeight:     "20",
		config.EnvFilterMode: "fuzzy",
		config.EnvSplit:      "50%",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	t.Setenv(config.EnvHome, t.TempDir())
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File, "an empty PICKR_LOG_FILE disables file logging")
	assert.Equal(t, 20, cfg.UI.Height)
	assert.Equal(t, "fuzzy", cfg.UI.FilterMode)
	assert.Equal(t, "50%", cfg.UI.Split)
}

func TestApplyEnv_BadHeight(t *testing.T) {
	cfg := &config.Config{}
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		if key == config.EnvHeight {
			return "tall", true
		}
		return "", false
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvHeight)
}

func TestGlobalConfig(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	cfg := config.GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, config.GetGlobalConfig())

	replacement := config.Default()
	replacement.Logging.Level = "error"
	config.SetGlobalConfig(replacement)
	assert.Equal(t, "error", config.GetLoggingConfig().Level)
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)

	lc.File = "/tmp/pickr.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/pickr.log", got.File)
}

func TestEnsureLogDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	require.NoError(t, config.EnsureLogDir())
	info, err := os.Stat(filepath.Join(home, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
