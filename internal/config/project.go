package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/pickr/internal/logging"
)

// EnvProjectDir points at a project directory containing .pickr/config.yaml.
const EnvProjectDir = "PICKR_PROJECT_DIR"

// projectDirName is the per-project configuration directory.
const projectDirName = ".pickr"

// ErrNoProject is returned by FindProject when no ancestor holds project configuration.
var ErrNoProject = errors.New("no pickr project configuration found")

// resolvedProjectDir holds the resolved project directory path for use
// by other config functions during the lifetime of a CLI invocation.
var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config loaders
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory for use by other config functions.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .pickr directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. PICKR_PROJECT_DIR env var
//  3. FindProject(startDir) walk-up
//
// Returns the absolute path to $PROJECT/.pickr/ or empty string if no project
// was found. The global configuration directory never counts as a project.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	projectRoot, err := FindProject(startDir)
	if err != nil {
		if !errors.Is(err, ErrNoProject) {
			logger := logging.FromContext(ctx)
			logger.Warn().
				Str("component", "config").
				Err(err).
				Str("start_dir", startDir).
				Msg("unexpected error during project discovery")
		}
		return ""
	}

	return toAbsProjectDir(ctx, projectRoot)
}

// FindProject walks up from startDir to the first directory holding
// .pickr/config.yaml, skipping the global configuration directory.
func FindProject(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	globalDir, _ := GetConfigDir()

	for {
		candidate := filepath.Join(dir, projectDirName)
		if candidate != globalDir {
			if _, statErr := os.Stat(filepath.Join(candidate, configFileName)); statErr == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// WithProjectOverlay returns base with the sections of the project-local
// config.yaml replacing its own. If projectDir is empty or holds no readable
// overlay, base is returned unchanged.
func WithProjectOverlay(ctx context.Context, base *Config, projectDir string) *Config {
	if projectDir == "" {
		return base
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		// Missing project config is not an error; keep the base configuration.
		return base
	}

	merged := *base
	if err := ShallowMergeYAML(&merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using base configuration")
		return base
	}

	return &merged
}

// toAbsProjectDir converts dir to an absolute path and appends ".pickr".
// If the path already ends with ".pickr", it is returned as-is (after
// resolving to an absolute path) to prevent double-append.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}

	return filepath.Join(abs, projectDirName)
}
