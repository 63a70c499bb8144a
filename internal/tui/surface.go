package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/pickr/internal/styled"
)

const (
	// sgrReset ends any style left open by a line.
	sgrReset = "\x1b[0m"
	ellipsis = "…"
)

// Surface is a fixed-size grid of lines that panes draw into.
type Surface interface {
	Width() int
	Height() int
	// FillLine replaces line i with text, shortened or padded to the width.
	// Out-of-range lines are ignored.
	FillLine(i int, text styled.Text)
	// Clear blanks every line.
	Clear()
}

// Canvas is an in-memory Surface. Every line always holds exactly Width
// terminal cells; wide runes take two.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas returns a blank canvas of width by height cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.lines = make([]string, c.height)
	c.Clear()
	return c
}

// Width returns the number of cells per line.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of lines.
func (c *Canvas) Height() int {
	return c.height
}

// FillLine implements Surface.
func (c *Canvas) FillLine(i int, text styled.Text) {
	if i < 0 || i >= c.height {
		return
	}
	line := fitCells(text.String(), c.width)
	if text.IsStyled() {
		line += sgrReset
	}
	c.lines[i] = line
}

// Clear implements Surface.
func (c *Canvas) Clear() {
	blank := strings.Repeat(" ", c.width)
	for i := range c.lines {
		c.lines[i] = blank
	}
}

// Lines returns a copy of the rendered lines.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// String joins the lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// closeStyle ends any style the text leaves open so it cannot bleed into
// whatever is drawn after it.
func closeStyle(t styled.Text) styled.Text {
	if !t.IsStyled() {
		return t
	}
	return t.Append(styled.Styled(sgrReset))
}

// cellWidth is the number of terminal cells raw occupies. Escape sequences
// take none.
func cellWidth(raw string) int {
	return ansi.StringWidth(raw)
}

// fitCells shortens raw with an ellipsis or right-pads it with spaces to
// exactly width cells. A wide rune that would straddle the edge is dropped
// and replaced by padding.
func fitCells(raw string, width int) string {
	if width < 1 {
		return ""
	}
	if cellWidth(raw) > width {
		raw = ansi.Truncate(raw, width, ellipsis)
	}
	if pad := width - cellWidth(raw); pad > 0 {
		raw += strings.Repeat(" ", pad)
	}
	return raw
}

// fitText is fitCells for styled text.
func fitText(t styled.Text, width int) styled.Text {
	return styled.Styled(fitCells(t.String(), width))
}
