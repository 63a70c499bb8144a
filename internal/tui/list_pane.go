package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pickr/internal/match"
	"github.com/rshade/pickr/internal/styled"
	"github.com/rshade/pickr/internal/tui/layout"
	"github.com/rshade/pickr/internal/tui/listview"
	"github.com/rshade/pickr/internal/tui/scrollbar"
)

const (
	headerHeight   = 1
	scrollBarWidth = 1
	// rowPrefixWidth covers the cursor and selection columns.
	rowPrefixWidth = 2

	cursorGlyph   = ">"
	selectedGlyph = "*"
	headerRule    = "─"
)

// countPrinter formats item counts with thousands separators.
var countPrinter = message.NewPrinter(language.English) //nolint:gochecknoglobals // Stateless formatter.

// entry is an item with its label resolved once.
type entry[T any] struct {
	value   T
	label   styled.Text
	content string
}

// ListPane is the filterable, selectable list of items.
type ListPane[T any] struct {
	view    *listview.ListView[entry[T]]
	natural layout.Size
}

// NewListPane builds the list pane. label is called once per item; matches
// is applied to the visible label text and defaults to substring matching.
func NewListPane[T any](items []T, label func(T) styled.Text, matches match.Func) (*ListPane[T], error) {
	if matches == nil {
		matches = match.Substring
	}

	entries := make([]entry[T], len(items))
	widest := 0
	for i, item := range items {
		l := label(item)
		entries[i] = entry[T]{value: item, label: l, content: l.Content()}
		widest = max(widest, cellWidth(l.Content()))
	}

	filter := func(e entry[T], text string) bool {
		return matches(e.content, text)
	}
	view, err := listview.New(entries, 1, filter)
	if err != nil {
		return nil, err
	}

	return &ListPane[T]{
		view: view,
		natural: layout.Size{
			Width:  rowPrefixWidth + widest + scrollBarWidth,
			Height: headerHeight + len(items),
		},
	}, nil
}

// NaturalSize is the size that shows every item without truncation.
func (p *ListPane[T]) NaturalSize() layout.Size {
	return p.natural
}

// OnHighlightChanged registers fn to be called when the highlighted item changes.
func (p *ListPane[T]) OnHighlightChanged(fn func(item T, ok bool)) {
	if fn == nil {
		p.view.OnHighlightChanged(nil)
		return
	}
	p.view.OnHighlightChanged(func(e entry[T], ok bool) {
		fn(e.value, ok)
	})
}

// Highlighted returns the highlighted item, if any item is visible.
func (p *ListPane[T]) Highlighted() (T, bool) {
	e, ok := p.view.Highlighted()
	return e.value, ok
}

// Selected returns the items a confirmation picks: the explicit selection,
// or the highlighted item when nothing is selected.
func (p *ListPane[T]) Selected() []T {
	entries := p.view.SelectedItems()
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

// SelectedLabels returns the visible label text of Selected.
func (p *ListPane[T]) SelectedLabels() []string {
	entries := p.view.SelectedItems()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.content
	}
	return out
}

// Filter returns the current filter text.
func (p *ListPane[T]) Filter() string {
	return p.view.Filter()
}

// Resize fits the page to a pane of the given height. The page keeps at
// least one row, so a pane without room for rows still has a valid page.
func (p *ListPane[T]) Resize(height int) error {
	if err := p.view.Resize(max(1, height-headerHeight)); err != nil {
		return fmt.Errorf("resizing list pane: %w", err)
	}
	return nil
}

// HandleKey applies a key press. It reports whether the key was consumed.
func (p *ListPane[T]) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.ExtendUp):
		p.view.HighlightPrevious(true)
	case key.Matches(msg, keys.ExtendDown):
		p.view.HighlightNext(true)
	case key.Matches(msg, keys.ExtendPageUp):
		p.view.HighlightPageUp(true)
	case key.Matches(msg, keys.ExtendPageDown):
		p.view.HighlightPageDown(true)
	case key.Matches(msg, keys.ExtendHome):
		p.view.HighlightFirst(true)
	case key.Matches(msg, keys.ExtendEnd):
		p.view.HighlightLast(true)
	case key.Matches(msg, keys.Up):
		p.view.HighlightPrevious(false)
	case key.Matches(msg, keys.Down):
		p.view.HighlightNext(false)
	case key.Matches(msg, keys.PageUp):
		p.view.HighlightPageUp(false)
	case key.Matches(msg, keys.PageDown):
		p.view.HighlightPageDown(false)
	case key.Matches(msg, keys.Home):
		p.view.HighlightFirst(false)
	case key.Matches(msg, keys.End):
		p.view.HighlightLast(false)
	case key.Matches(msg, keys.Toggle):
		p.view.ToggleSelection()
	case key.Matches(msg, keys.SelectAll):
		p.view.SelectAll()
	case key.Matches(msg, keys.UnselectAll):
		p.view.UnselectAll()
	case key.Matches(msg, keys.Invert):
		p.view.InvertSelection()
	default:
		return p.editFilter(msg)
	}
	return true
}

// editFilter handles the keys that change the filter text.
func (p *ListPane[T]) editFilter(msg tea.KeyMsg) bool {
	filter := p.view.Filter()

	switch msg.String() {
	case keyEsc:
		if filter == "" {
			return false
		}
		p.view.SetFilter("")
		return true
	case keyBackspace:
		if filter != "" {
			runes := []rune(filter)
			p.view.SetFilter(string(runes[:len(runes)-1]))
		}
		return true
	}

	if msg.Alt {
		return false
	}
	switch msg.Type { //nolint:exhaustive // Only text input extends the filter.
	case tea.KeySpace:
		p.view.SetFilter(filter + " ")
		return true
	case tea.KeyRunes:
		text := strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) {
				return r
			}
			return -1
		}, string(msg.Runes))
		if text == "" {
			return false
		}
		p.view.SetFilter(filter + text)
		return true
	default:
		return false
	}
}

// Draw renders the header, the current page and the scrollbar.
func (p *ListPane[T]) Draw(s Surface, theme Theme, active bool) {
	s.Clear()
	if s.Height() < 1 || s.Width() < 1 {
		return
	}

	s.FillLine(0, drawHeader(p.headerText(), s.Width(), theme, active))

	rowWidth := max(0, s.Width()-scrollBarWidth)
	track := s.Height() - headerHeight
	bar := scrollbar.Compute(track, p.view.ScrollOffset(), p.view.PageSize(), p.view.Len())

	rows := p.view.Page()
	for i := range track {
		line := styled.Empty
		if i < len(rows) {
			line = renderRow(rows[i], rowWidth, theme)
		}
		glyph := string(bar.Glyph(i, scrollbar.VerticalBar, scrollbar.VerticalThumb))
		s.FillLine(headerHeight+i, styled.Concat(
			closeStyle(fitText(line, rowWidth)),
			styled.Styled(theme.ScrollBar.Render(glyph)),
		))
	}
}

func (p *ListPane[T]) headerText() string {
	counts := countPrinter.Sprintf("%d/%d", p.view.Len(), p.view.TotalLen())
	if filter := p.view.Filter(); filter != "" {
		return counts + "> " + filter
	}
	return counts
}

func renderRow[T any](row listview.Row[entry[T]], width int, theme Theme) styled.Text {
	cursor, mark := " ", " "
	if row.Highlighted {
		cursor = cursorGlyph
	}
	if row.Selected {
		mark = selectedGlyph
	}

	if row.Highlighted {
		// The highlight spans the whole row, so the label's own styles are dropped.
		plain := fitCells(cursor+mark+row.Value.content, width)
		return styled.Styled(theme.Highlight.Render(plain))
	}

	label := row.Value.label
	if !label.IsStyled() {
		label = styled.Styled(theme.Item.Render(row.Value.content))
	}
	return styled.Concat(
		styled.Plain(cursor),
		styled.Styled(theme.Marker.Render(mark)),
		label,
	)
}

// drawHeader renders header text followed by a rule to the pane width.
func drawHeader(text string, width int, theme Theme, active bool) styled.Text {
	title := ansi.Truncate(styled.Plain(text).String(), width, ellipsis)
	header := styled.Styled(theme.Header(active).Render(title))
	if rest := width - cellWidth(title) - 1; rest > 0 {
		header = styled.Concat(header,
			styled.Plain(" "),
			styled.Styled(theme.Border.Render(strings.Repeat(headerRule, rest))))
	}
	return header
}
