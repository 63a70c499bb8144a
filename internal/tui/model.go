package tui

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pickr/internal/logging"
	"github.com/rshade/pickr/internal/match"
	"github.com/rshade/pickr/internal/styled"
	"github.com/rshade/pickr/internal/tui/layout"
)

// Separator glyphs drawn between side-by-side panes.
const (
	separatorTop  = "┬"
	separatorLine = "│"
)

// ErrMissingLabel is returned when Options has no Label function.
const ErrMissingLabel = constError("label function is required")

// Options configures a picker session.
type Options[T any] struct {
	// Label returns the text shown for an item. Required.
	Label func(T) styled.Text
	// Preview returns the preview text of an item. Nil disables the preview pane.
	Preview func(T) string
	// Match decides whether a label passes the filter. Defaults to substring matching.
	Match match.Func

	// Height is the number of rows the inline picker occupies; 0 uses the terminal height.
	Height int
	// MaxWidth bounds the list pane width; 0 leaves it unbounded.
	MaxWidth int
	// Split is the list pane size in a split layout; nil sizes it automatically.
	Split     *layout.Dimension
	Direction layout.Direction
	AltScreen bool

	// Theme and Keys default to DefaultTheme and DefaultKeyMap when nil.
	Theme *Theme
	Keys  *KeyMap

	// Clipboard receives copied text. Defaults to the system clipboard.
	Clipboard func(text string) error

	// Input overrides the key source used by Run.
	Input io.Reader
	// Output overrides the terminal Run draws on.
	Output *os.File
}

// sessionState tracks whether the picker is still running.
type sessionState int

const (
	stateRunning sessionState = iota
	stateConfirmed
	stateCancelled
)

// Result is the outcome of a picker session.
type Result[T any] struct {
	// Selected holds the confirmed items in their original order.
	Selected []T
	// Cancelled is set when the session ended without confirmation.
	Cancelled bool
}

// Model is the Bubble Tea model of the picker.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model[T any] struct {
	ctx context.Context

	layout  *layout.Layout
	list    *ListPane[T]
	preview *PreviewPane

	keys      KeyMap
	theme     Theme
	clipboard func(string) error

	maxHeight int
	altScreen bool

	state    sessionState
	selected []T
}

// NewModel builds the picker over items.
func NewModel[T any](ctx context.Context, items []T, opts Options[T]) (Model[T], error) {
	if opts.Label == nil {
		return Model[T]{}, ErrMissingLabel
	}
	list, err := NewListPane(items, opts.Label, opts.Match)
	if err != nil {
		return Model[T]{}, err
	}

	m := Model[T]{
		ctx:       ctx,
		list:      list,
		keys:      DefaultKeyMap(),
		theme:     DefaultTheme(),
		clipboard: clipboard.WriteAll,
		maxHeight: opts.Height,
		altScreen: opts.AltScreen,
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	}
	if opts.Clipboard != nil {
		m.clipboard = opts.Clipboard
	}

	listMax := list.NaturalSize()
	if opts.MaxWidth > 0 {
		listMax.Width = min(listMax.Width, opts.MaxWidth)
	}

	if opts.Preview == nil {
		m.layout = layout.NewSingle(listMax)
		return m, nil
	}

	m.layout = layout.NewSplit(listMax, opts.Direction, opts.Split)
	m.preview = NewPreviewPane()
	previewOf := opts.Preview
	preview := m.preview
	list.OnHighlightChanged(func(item T, ok bool) {
		if !ok {
			preview.SetText("")
			return
		}
		preview.SetText(previewOf(item))
	})
	if item, ok := list.Highlighted(); ok {
		preview.SetText(previewOf(item))
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if err := m.resize(msg.Width, msg.Height); err != nil {
			logging.FromContext(m.ctx).Error().
				Ctx(m.ctx).
				Str("component", "tui").
				Int("width", msg.Width).
				Int("height", msg.Height).
				Err(err).
				Msg("failed to resize picker")
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state != stateRunning {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.finish(stateCancelled)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelection()
	case key.Matches(msg, m.keys.SwitchPane):
		m.layout.SwitchActivePane()
		return m, nil
	}

	if m.activePaneHandles(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.selected = m.list.Selected()
		return m.finish(stateConfirmed)
	case msg.String() == keyEsc:
		return m.finish(stateCancelled)
	default:
		return m, nil
	}
}

func (m Model[T]) activePaneHandles(msg tea.KeyMsg) bool {
	if m.preview != nil && m.layout.ActivePane() == layout.PanePreview {
		return m.preview.HandleKey(msg, m.keys)
	}
	return m.list.HandleKey(msg, m.keys)
}

func (m Model[T]) finish(state sessionState) (tea.Model, tea.Cmd) {
	m.state = state

	log := logging.FromContext(m.ctx)
	log.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Bool("confirmed", state == stateConfirmed).
		Int("selected_count", len(m.selected)).
		Msg("picker session finished")

	return m, tea.Quit
}

// copySelection returns a command writing the selected labels to the clipboard.
func (m Model[T]) copySelection() tea.Cmd {
	text := strings.Join(m.list.SelectedLabels(), "\n")
	if text == "" {
		return nil
	}
	ctx, write := m.ctx, m.clipboard
	return func() tea.Msg {
		log := logging.FromContext(ctx)
		if err := write(text); err != nil {
			log.Warn().
				Ctx(ctx).
				Str("component", "tui").
				Err(err).
				Msg("failed to copy selection to clipboard")
			return nil
		}
		log.Debug().
			Ctx(ctx).
			Str("component", "tui").
			Int("bytes", len(text)).
			Msg("copied selection to clipboard")
		return nil
	}
}

// resize lays the panes out for a terminal of width by height cells.
func (m Model[T]) resize(width, height int) error {
	if !m.altScreen && m.maxHeight > 0 {
		height = min(height, m.maxHeight)
	}
	m.layout.Resize(width, height)
	if err := m.list.Resize(m.layout.ListArea().Height); err != nil {
		return err
	}
	if m.preview == nil {
		return nil
	}
	if area, ok := m.layout.PreviewArea(); ok {
		m.preview.Resize(area.Width, area.Height)
	}
	return nil
}

// View implements tea.Model. A finished session renders nothing so the
// inline picker leaves no trace.
func (m Model[T]) View() string {
	if m.state != stateRunning {
		return ""
	}

	listArea := m.layout.ListArea()
	if listArea.Empty() {
		return ""
	}
	listCanvas := NewCanvas(listArea.Width, listArea.Height)
	m.list.Draw(listCanvas, m.theme, m.layout.ActivePane() == layout.PaneList)

	previewArea, ok := m.layout.PreviewArea()
	if m.preview == nil || !ok || previewArea.Empty() {
		return listCanvas.String()
	}
	previewCanvas := NewCanvas(previewArea.Width, previewArea.Height)
	m.preview.Draw(previewCanvas, m.theme, m.layout.ActivePane() == layout.PanePreview)

	if m.layout.Direction() == layout.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, listCanvas.String(), previewCanvas.String())
	}

	blocks := []string{listCanvas.String()}
	if sep, ok := m.layout.SeparatorArea(); ok {
		blocks = append(blocks, m.drawSeparator(sep.Height))
	}
	blocks = append(blocks, previewCanvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m Model[T]) drawSeparator(height int) string {
	c := NewCanvas(1, height)
	c.FillLine(0, styled.Styled(m.theme.Border.Render(separatorTop)))
	line := styled.Styled(m.theme.Border.Render(separatorLine))
	for i := 1; i < height; i++ {
		c.FillLine(i, line)
	}
	return c.String()
}

// Result returns the outcome of the session. A session that never confirmed
// counts as cancelled.
func (m Model[T]) Result() Result[T] {
	if m.state != stateConfirmed {
		return Result[T]{Cancelled: true}
	}
	return Result[T]{Selected: m.selected}
}
