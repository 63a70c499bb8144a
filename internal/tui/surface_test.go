package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/pickr/internal/styled"
)

func TestCanvas_FillLine(t *testing.T) {
	tests := []struct {
		name string
		text styled.Text
		want string
	}{
		{name: "pads short text", text: styled.Plain("ab"), want: "ab    "},
		{name: "exact width", text: styled.Plain("abcdef"), want: "abcdef"},
		{name: "ellipsizes long text", text: styled.Plain("abcdefgh"), want: "abcde…"},
		{name: "empty line", text: styled.Empty, want: "      "},
		{name: "styled text gets reset", text: styled.Styled("\x1b[31mred\x1b[0m"), want: "\x1b[31mred\x1b[0m   \x1b[0m"},
		{name: "wide runes count two cells", text: styled.Plain("日本"), want: "日本  "},
		{name: "wide runes ellipsized by cells", text: styled.Plain("日本語のファイル"), want: "日本… "},
		{name: "wide rune at the edge is dropped", text: styled.Plain("ab日本語"), want: "ab日… "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(6, 2)
			c.FillLine(1, tt.text)

			lines := c.Lines()
			assert.Equal(t, "      ", lines[0])
			assert.Equal(t, tt.want, lines[1])
			assert.Equal(t, 6, ansi.StringWidth(lines[1]))
		})
	}
}

func TestCanvas_OutOfRangeIgnored(t *testing.T) {
	c := NewCanvas(3, 1)
	c.FillLine(-1, styled.Plain("x"))
	c.FillLine(1, styled.Plain("x"))

	assert.Equal(t, "   ", c.String())
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.FillLine(0, styled.Plain("ab"))
	c.FillLine(1, styled.Plain("cd"))
	c.Clear()

	assert.Equal(t, "  \n  ", c.String())
	assert.Equal(t, 2, c.Width())
	assert.Equal(t, 2, c.Height())
}

func TestCanvas_NegativeSize(t *testing.T) {
	c := NewCanvas(-1, -1)
	assert.Equal(t, 0, c.Width())
	assert.Equal(t, 0, c.Height())
	assert.Empty(t, c.String())
}

func TestCloseStyle(t *testing.T) {
	plain := styled.Plain("x")
	assert.True(t, closeStyle(plain).Equal(plain))

	red := styled.Styled("\x1b[31mx")
	closed := closeStyle(red)
	assert.Equal(t, "\x1b[31mx\x1b[0m", closed.String())
	assert.Equal(t, 1, closed.ContentLength())
}
