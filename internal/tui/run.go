package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pickr/internal/logging"
)

// Run shows the picker until the user confirms or cancels. Without items it
// returns an empty result immediately.
//
// Keys are read from the controlling terminal when stdin is not one, so items
// may be piped in. The picker is drawn on stderr unless Options.Output is set,
// keeping stdout free for results.
func Run[T any](ctx context.Context, items []T, opts Options[T]) (Result[T], error) {
	log := logging.FromContext(ctx)
	if len(items) == 0 {
		log.Debug().Ctx(ctx).Str("component", "tui").Msg("no items, skipping picker")
		return Result[T]{}, nil
	}

	m, err := NewModel(ctx, items, opts)
	if err != nil {
		return Result[T]{}, fmt.Errorf("building picker: %w", err)
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	m.resize(TerminalSize(output))

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(output),
	}
	switch {
	case opts.Input != nil:
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	case !IsTerminal(os.Stdin):
		// Items arrived on stdin; keys come from the terminal itself.
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "tui").
		Int("item_count", len(items)).
		Bool("preview", opts.Preview != nil).
		Bool("alt_screen", opts.AltScreen).
		Msg("starting picker")

	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Result[T]{Cancelled: true}, ctx.Err()
		}
		return Result[T]{}, fmt.Errorf("running picker: %w", err)
	}

	fm, ok := final.(Model[T])
	if !ok {
		return Result[T]{}, fmt.Errorf("unexpected final model %T", final)
	}
	return fm.Result(), nil
}
