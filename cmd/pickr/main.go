// Command pickr is an interactive terminal picker: it reads items, lets the
// user filter and select them, and prints the selection.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/pickr/internal/cli"
	"github.com/rshade/pickr/pkg/version"
)

// exitCancelled follows the shell convention for a command ended by ctrl+c.
const exitCancelled = 130

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.ExecuteContext(ctx)
	return exitCode(err, root.ErrOrStderr())
}

// exitCode maps the command error to the process status, reporting every
// error except a cancelled selection.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case cli.IsCancelled(err):
		return exitCancelled
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}
