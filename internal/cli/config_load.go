package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pickr/internal/config"
)

// loadConfig builds the effective configuration and installs it as the global
// one. Later sources win: the config file (--config or the default location),
// the project overlay, then environment variables. Command flags are applied
// on top by the commands that use them.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var base *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		base = loaded
	} else {
		base = config.New()
	}

	projectFlag, _ := cmd.Flags().GetString("project-dir")
	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}
	projectDir := config.ResolveProjectDir(ctx, projectFlag, workDir)
	config.SetResolvedProjectDir(projectDir)

	cfg := config.WithProjectOverlay(ctx, base, projectDir)
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("applying environment overrides: %w", err)
	}

	config.SetGlobalConfig(cfg)
	return nil
}
