package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pickr/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("test")

	assert.Equal(t, "pickr", cmd.Name())
	assert.Equal(t, "test", cmd.Version)

	for _, name := range []string{"format", "label", "preview", "split", "split-direction",
		"height", "max-width", "filter-mode", "output", "alt-screen"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
	for _, name := range []string{"config", "project-dir", "debug", "log-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing persistent flag %q", name)
	}

	sub, _, err := cmd.Find([]string{"config", "validate"})
	require.NoError(t, err)
	assert.Equal(t, "validate", sub.Name())
}

func TestRootCmd_VersionFlag(t *testing.T) {
	setupConfigTest(t)

	output, err := execute(t, "--version")

	require.NoError(t, err)
	assert.Equal(t, "pickr version test\n", output)
}

func TestVersionCmd(t *testing.T) {
	_, projectRoot := setupConfigTest(t)
	t.Chdir(projectRoot)

	output, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, output, "pickr ")
	assert.Contains(t, output, "commit:")
	assert.Contains(t, output, "go:")
}

func TestRootCmd_DebugLogFile(t *testing.T) {
	_, projectRoot := setupConfigTest(t)
	t.Chdir(projectRoot)
	logFile := filepath.Join(projectRoot, "debug.log")

	output, err := execute(t, "--debug", "--log-file", logFile, "version")

	require.NoError(t, err)
	assert.Contains(t, output, "Logging to "+logFile)
	assert.FileExists(t, logFile)
}
