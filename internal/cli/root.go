package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pickr/internal/logging"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrCancelled is returned when the user leaves the picker without confirming.
const ErrCancelled = constError("selection cancelled")

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pickr CLI. Run without a
// subcommand it shows the picker over the items read from a file or stdin.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		flags     pickFlags
	)

	cmd := &cobra.Command{
		Use:   "pickr [file]",
		Short: "Interactively select items from a list",
		Long: `pickr reads items from a file or stdin, lets you filter and select them in
an inline terminal picker, and writes the confirmed selection to stdout.

Items are plain lines by default. With --format json or --format yaml each
record is structured, and --label and --preview pick fields out of it with
gjson paths.`,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines written while the picker owns the terminal are shown
			// once it is gone.
			if logResult != nil && logResult.Stderr != nil {
				logResult.Stderr.Hold()
				defer func() { _ = logResult.Stderr.Release() }()
			}
			return runPick(cmd, args, flags)
		},
	}

	cmd.PersistentFlags().String("config", "", "configuration file (default $PICKR_HOME/config.yaml or ~/.pickr/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .pickr/config.yaml overrides")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file")

	flags.register(cmd)
	cmd.AddCommand(newConfigCmd(), NewVersionCmd())

	return cmd
}

const rootCmdExample = `  # Pick files to delete
  ls | pickr | xargs rm

  # Pick from a file, preview each line with a side pane
  pickr --preview @pretty hosts.txt

  # Pick JSON records by name and print the chosen records as a JSON array
  kubectl get pods -o json | jq -c '.items[]' | \
    pickr --format json --label metadata.name --preview @pretty --output json

  # Fuzzy filtering with the preview below the list
  pickr --filter-mode fuzzy --split-direction vertical --preview @pretty items.txt`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
