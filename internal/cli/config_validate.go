package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rshade/pickr/internal/config"
	"github.com/rshade/pickr/internal/tui"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the configuration file, the
project overrides and the PICKR_* environment variables.

This includes:
- Schema version compatibility
- UI sizes, split and filter mode
- Input format
- Key bindings (every action must exist and have at least one key)
- Log level`,
		Example: `  # Validate current configuration
  pickr config validate

  # Validate and show detailed information
  pickr config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if _, err := tui.KeyMapFromConfig(cfg.Keys); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project directory: %s\n", dir)
	}
	cmd.Printf("  Height: %d\n", cfg.UI.Height)
	cmd.Printf("  Filter mode: %s\n", cfg.UI.FilterMode)
	cmd.Printf("  Input format: %s\n", cfg.Input.Format)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)

	printKeyDetails(cmd, cfg)
}

// printKeyDetails prints the rebound actions.
func printKeyDetails(cmd *cobra.Command, cfg *config.Config) {
	if len(cfg.Keys) == 0 {
		cmd.Println("  No custom key bindings")
		return
	}

	actions := make([]string, 0, len(cfg.Keys))
	for action := range cfg.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	cmd.Printf("  Custom key bindings: %d\n", len(actions))
	for _, action := range actions {
		cmd.Printf("    - %s: %v\n", action, cfg.Keys[action])
	}
}
