package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/pickr/internal/styled"
	"github.com/rshade/pickr/internal/tui/scrollbar"
)

// tabWidth is the number of spaces a tab expands to in previews.
const tabWidth = 4

// PreviewPane shows the preview text of the highlighted item, word-wrapped to
// the pane width, with its own scroll position.
type PreviewPane struct {
	text  string
	lines []styled.Text

	wrapWidth int
	pageSize  int
	offset    int
}

// NewPreviewPane returns an empty preview pane.
func NewPreviewPane() *PreviewPane {
	return &PreviewPane{pageSize: 1}
}

// SetText replaces the previewed text and scrolls back to the top.
func (p *PreviewPane) SetText(text string) {
	p.text = text
	p.offset = 0
	p.rewrap()
}

// Text returns the previewed text.
func (p *PreviewPane) Text() string {
	return p.text
}

// Resize fits the pane to width by height cells, rewrapping when the width changed.
func (p *PreviewPane) Resize(width, height int) {
	wrapWidth := max(0, width-scrollBarWidth)
	p.pageSize = max(1, height-headerHeight)
	if wrapWidth != p.wrapWidth {
		p.wrapWidth = wrapWidth
		p.rewrap()
	}
	p.offset = min(p.offset, p.maxOffset())
}

// rewrap builds a new line slice so slices returned by Lines stay intact.
func (p *PreviewPane) rewrap() {
	if p.text == "" {
		p.lines = nil
		return
	}
	var lines []styled.Text
	text := strings.ReplaceAll(p.text, "\t", strings.Repeat(" ", tabWidth))
	for _, raw := range strings.Split(text, "\n") {
		line := styled.Styled(strings.TrimRight(raw, "\r"))
		for _, wrapped := range line.WordWrap(p.wrapWidth) {
			lines = append(lines, splitWide(wrapped, p.wrapWidth)...)
		}
	}
	p.lines = lines
}

// splitWide breaks a wrapped line that still exceeds width cells because it
// holds wide runes.
func splitWide(line styled.Text, width int) []styled.Text {
	if cellWidth(line.String()) <= width {
		return []styled.Text{line}
	}
	parts := strings.Split(ansi.Hardwrap(line.String(), width, true), "\n")
	out := make([]styled.Text, len(parts))
	for i, part := range parts {
		out[i] = styled.Styled(part)
	}
	return out
}

// Lines returns the wrapped lines.
func (p *PreviewPane) Lines() []styled.Text {
	return p.lines
}

// Offset returns the index of the first visible line.
func (p *PreviewPane) Offset() int {
	return p.offset
}

func (p *PreviewPane) maxOffset() int {
	return max(0, len(p.lines)-p.pageSize)
}

// ScrollUp moves one line towards the top.
func (p *PreviewPane) ScrollUp() {
	p.offset = max(0, p.offset-1)
}

// ScrollDown moves one line towards the bottom.
func (p *PreviewPane) ScrollDown() {
	p.offset = min(p.offset+1, p.maxOffset())
}

// ScrollPageUp moves one page towards the top.
func (p *PreviewPane) ScrollPageUp() {
	p.offset = max(0, p.offset-p.pageSize)
}

// ScrollPageDown moves one page towards the bottom.
func (p *PreviewPane) ScrollPageDown() {
	p.offset = min(p.offset+p.pageSize, p.maxOffset())
}

// ScrollToTop shows the first line.
func (p *PreviewPane) ScrollToTop() {
	p.offset = 0
}

// ScrollToBottom shows the last page.
func (p *PreviewPane) ScrollToBottom() {
	p.offset = p.maxOffset()
}

// HandleKey scrolls on navigation keys. It reports whether the key was consumed.
func (p *PreviewPane) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.Up):
		p.ScrollUp()
	case key.Matches(msg, keys.Down):
		p.ScrollDown()
	case key.Matches(msg, keys.PageUp):
		p.ScrollPageUp()
	case key.Matches(msg, keys.PageDown):
		p.ScrollPageDown()
	case key.Matches(msg, keys.Home):
		p.ScrollToTop()
	case key.Matches(msg, keys.End):
		p.ScrollToBottom()
	default:
		return false
	}
	return true
}

// Draw renders the header, the visible lines and the scrollbar.
func (p *PreviewPane) Draw(s Surface, theme Theme, active bool) {
	s.Clear()
	if s.Height() < 1 || s.Width() < 1 {
		return
	}

	s.FillLine(0, drawHeader(p.headerText(), s.Width(), theme, active))

	lineWidth := max(0, s.Width()-scrollBarWidth)
	track := s.Height() - headerHeight
	visible := min(p.pageSize, len(p.lines)-p.offset)
	bar := scrollbar.Compute(track, p.offset, visible, len(p.lines))

	for i := range track {
		line := styled.Empty
		if i < visible {
			line = p.lines[p.offset+i]
		}
		glyph := string(bar.Glyph(i, scrollbar.VerticalBar, scrollbar.VerticalThumb))
		s.FillLine(headerHeight+i, styled.Concat(
			closeStyle(fitText(line, lineWidth)),
			styled.Styled(theme.ScrollBar.Render(glyph)),
		))
	}
}

func (p *PreviewPane) headerText() string {
	total := len(p.lines)
	if total == 0 {
		return "0-0/0"
	}
	last := min(p.offset+p.pageSize, total)
	return fmt.Sprintf("%d-%d/%d", p.offset+1, last, total)
}
