package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/pickr/internal/cli/pagination"
	"github.com/rshade/pickr/internal/config"
	"github.com/rshade/pickr/internal/ingest"
	"github.com/rshade/pickr/internal/match"
	"github.com/rshade/pickr/internal/styled"
	"github.com/rshade/pickr/internal/tui"
	"github.com/rshade/pickr/internal/tui/layout"
)

// pickFunc runs the picker over resolved records.
type pickFunc func(ctx context.Context, items []ingest.Record, opts tui.Options[ingest.Record]) (tui.Result[ingest.Record], error)

// runPicker is replaced in tests, which have no terminal to draw on.
var runPicker pickFunc = tui.Run[ingest.Record] //nolint:gochecknoglobals // Test seam for the interactive session

// pickFlags holds the flags of the root command. Empty values fall back to
// the configuration.
type pickFlags struct {
	format         string
	label          string
	preview        string
	split          string
	splitDirection string
	filterMode     string
	output         string
	height         int
	maxWidth       int
	altScreen      bool

	sort   string
	window pagination.Params
}

func (f *pickFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.format, "format", "f", "", "input format: lines, json or yaml")
	fl.StringVarP(&f.label, "label", "l", "", "gjson path of the label of structured records")
	fl.StringVarP(&f.preview, "preview", "p", "", "gjson path of the preview text, or @pretty for the whole record")
	fl.StringVar(&f.split, "split", "", "list pane size beside the preview: auto, 40 or 30%")
	fl.StringVar(&f.splitDirection, "split-direction", "", "preview placement: horizontal or vertical")
	fl.StringVar(&f.filterMode, "filter-mode", "", "filter matching: substring or fuzzy")
	fl.StringVarP(&f.output, "output", "o", outputLines, "output format: lines or json")
	fl.IntVar(&f.height, "height", 0, "rows the picker occupies (0 = configured height)")
	fl.IntVar(&f.maxWidth, "max-width", 0, "maximum list pane width (0 = configured width)")
	fl.BoolVar(&f.altScreen, "alt-screen", false, "use the whole terminal instead of drawing inline")
	fl.StringVar(&f.sort, "sort", "", "order items by label, index or a gjson path, optionally with :asc or :desc")
	fl.IntVar(&f.window.Limit, "limit", pagination.DefaultLimit, "offer at most this many items (0 = all)")
	fl.IntVar(&f.window.Offset, "offset", pagination.DefaultOffset, "skip this many items before the first one offered")
}

// windowParams returns the validated sort and window settings.
func (f *pickFlags) windowParams() (pagination.Params, error) {
	params := f.window
	field, order, err := pagination.ParseSort(f.sort)
	if err != nil {
		return pagination.Params{}, err
	}
	params.SortField, params.SortOrder = field, order
	if err = params.Validate(); err != nil {
		return pagination.Params{}, err
	}
	return params, nil
}

// apply copies the flags that were set onto cfg.
func (f *pickFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Input.Format = f.format
	}
	if fl.Changed("label") {
		cfg.Input.Label = f.label
	}
	if fl.Changed("preview") {
		cfg.Input.Preview = f.preview
	}
	if fl.Changed("split") {
		cfg.UI.Split = f.split
	}
	if fl.Changed("split-direction") {
		cfg.UI.SplitDirection = f.splitDirection
	}
	if fl.Changed("filter-mode") {
		cfg.UI.FilterMode = f.filterMode
	}
	if fl.Changed("height") {
		cfg.UI.Height = f.height
	}
	if fl.Changed("max-width") {
		cfg.UI.MaxWidth = f.maxWidth
	}
	if fl.Changed("alt-screen") {
		cfg.UI.AltScreen = f.altScreen
	}
}

// runPick reads, resolves and presents the items, then writes the selection.
func runPick(cmd *cobra.Command, args []string, flags pickFlags) error {
	ctx := cmd.Context()

	cfg := *config.GetGlobalConfig()
	flags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	writeSelection, err := selectionWriter(flags.output)
	if err != nil {
		return err
	}
	window, err := flags.windowParams()
	if err != nil {
		return err
	}

	records, err := readRecords(ctx, cmd, args, cfg.Input)
	if err != nil {
		return err
	}
	if window.IsEnabled() {
		total := len(records)
		records = pagination.NewRecordSorter().Sort(records, window.SortField, window.SortOrder)
		records = pagination.Apply(window, records)
		logger.Debug().
			Ctx(ctx).
			Str("operation", "window").
			Str("sort_field", window.SortField).
			Int("offered", len(records)).
			Int("total", total).
			Msg("applied sort and window")
	}

	opts, err := pickerOptions(cfg)
	if err != nil {
		return err
	}

	logger.Debug().
		Ctx(ctx).
		Str("operation", "pick").
		Int("record_count", len(records)).
		Str("format", cfg.Input.Format).
		Msg("starting selection")

	result, err := runPicker(ctx, records, opts)
	if err != nil {
		if result.Cancelled {
			return fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		return err
	}
	if result.Cancelled {
		logger.Debug().Ctx(ctx).Str("operation", "pick").Msg("selection cancelled")
		return ErrCancelled
	}

	logger.Debug().
		Ctx(ctx).
		Str("operation", "pick").
		Int("selected_count", len(result.Selected)).
		Msg("selection confirmed")
	return writeSelection(cmd.OutOrStdout(), result.Selected)
}

// readRecords reads the file argument, or stdin without one, and resolves
// every record.
func readRecords(ctx context.Context, cmd *cobra.Command, args []string, in config.InputConfig) ([]ingest.Record, error) {
	format, err := ingest.ParseFormat(in.Format)
	if err != nil {
		return nil, err
	}

	var src io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			return nil, fmt.Errorf("opening input: %w", openErr)
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	raws, err := ingest.Read(ctx, src, format)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return ingest.Resolve(ctx, raws, ingest.Spec{LabelPath: in.Label, PreviewPath: in.Preview})
}

// pickerOptions translates the configuration into picker options.
func pickerOptions(cfg config.Config) (tui.Options[ingest.Record], error) {
	matches, err := match.ByName(cfg.UI.FilterMode)
	if err != nil {
		return tui.Options[ingest.Record]{}, err
	}
	split, err := cfg.SplitDimension()
	if err != nil {
		return tui.Options[ingest.Record]{}, err
	}
	direction, err := layout.ParseDirection(cfg.UI.SplitDirection)
	if err != nil {
		return tui.Options[ingest.Record]{}, err
	}
	keys, err := tui.KeyMapFromConfig(cfg.Keys)
	if err != nil {
		return tui.Options[ingest.Record]{}, err
	}

	// The picker draws on stderr, so colors follow what stderr supports.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))
	theme := tui.ThemeFromConfig(cfg.Theme)

	opts := tui.Options[ingest.Record]{
		Label:     func(r ingest.Record) styled.Text { return styled.Styled(r.Label) },
		Match:     matches,
		Height:    cfg.UI.Height,
		MaxWidth:  cfg.UI.MaxWidth,
		Split:     split,
		Direction: direction,
		AltScreen: cfg.UI.AltScreen,
		Theme:     &theme,
		Keys:      &keys,
	}
	if cfg.Input.Preview != "" {
		opts.Preview = func(r ingest.Record) string { return r.Preview }
	}
	return opts, nil
}

// IsCancelled reports whether err means the user cancelled the selection.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
