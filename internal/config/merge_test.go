package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pickr/internal/config"
)

// newDefaultTarget returns a Config with known non-zero defaults so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Version: config.CurrentVersion,
		UI: config.UIConfig{
			Height:         10,
			SplitDirection: "horizontal",
			FilterMode:     "substring",
		},
		Input: config.InputConfig{
			Format: "lines",
		},
		Theme: config.ThemeConfig{
			Border: "8",
			Marker: "3",
		},
		Keys: map[string][]string{
			"accept": {"enter"},
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
ui:
  height: 20
  filter_mode: fuzzy
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 20, target.UI.Height)
	assert.Equal(t, "fuzzy", target.UI.FilterMode)
	// Whole section replaced: split_direction was not in the overlay.
	assert.Empty(t, target.UI.SplitDirection)
	// Other sections untouched.
	assert.Equal(t, "lines", target.Input.Format)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
input:
  format: json
  label: name
  preview: summary
logging:
  level: debug
  format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Input.Format)
	assert.Equal(t, "name", target.Input.Label)
	assert.Equal(t, "summary", target.Input.Preview)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, 10, target.UI.Height)
}

func TestShallowMergeYAML_EmptyOverlayFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_CommentOnlyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# nothing to see here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_CorruptedYAMLReturnsError(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "ui: [unterminated\n")

	err := config.ShallowMergeYAML(target, overlay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing overlay YAML")
}

func TestShallowMergeYAML_MissingFileReturnsError(t *testing.T) {
	target := newDefaultTarget()

	err := config.ShallowMergeYAML(target, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading overlay file")
}

func TestShallowMergeYAML_NilTarget(t *testing.T) {
	overlay := writeOverlay(t, "ui:\n  height: 5\n")
	require.Error(t, config.ShallowMergeYAML(nil, overlay))
}

func TestShallowMergeYAML_KeysReplacedNotMerged(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
keys:
  cancel: [ctrl+g]
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, map[string][]string{"cancel": {"ctrl+g"}}, target.Keys)
}

func TestShallowMergeYAML_OverrideTheme(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
theme:
  highlight_background: "#303030"
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "#303030", target.Theme.HighlightBackground)
	assert.Empty(t, target.Theme.Border)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
version: "9.0.0"
plugins:
  foo: bar
logging:
  level: warn
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	// version is not an overlay section.
	assert.Equal(t, config.CurrentVersion, target.Version)
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_TypeMismatchReturnsError(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
ui:
  height: tall
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `applying overlay section "ui"`)
}
