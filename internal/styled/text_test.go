package styled

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSequence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLen  int
		wantKind SequenceKind
	}{
		{name: "lone escape", input: "\x1b", wantLen: 1, wantKind: SequenceUnknown},
		{name: "two byte escape", input: "\x1bxt", wantLen: 1, wantKind: SequenceUnknown},
		{name: "sgr", input: "\x1b[1;31mred", wantLen: 7, wantKind: SequenceSGR},
		{name: "cursor down", input: "\x1b[1B", wantLen: 4, wantKind: SequenceUnknown},
		{name: "private mode", input: "\x1b[?25h", wantLen: 6, wantKind: SequenceUnknown},
		{name: "unterminated csi", input: "\x1b[0000", wantLen: 6, wantKind: SequenceUnknown},
		{name: "csi at end", input: "\x1b[", wantLen: 2, wantKind: SequenceUnknown},
		{name: "osc with bel", input: "\x1b]0;title\x07rest", wantLen: 10, wantKind: SequenceUnknown},
		{name: "osc with st", input: "\x1b]0;title\x1b\\rest", wantLen: 11, wantKind: SequenceUnknown},
		{name: "unterminated dcs", input: "\x1bPabc", wantLen: 5, wantKind: SequenceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, kind := ScanSequence(tt.input)
			assert.Equal(t, tt.wantLen, n)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPlain  string
		wantStyled string
		wantLength int
	}{
		{
			name:       "control characters dropped",
			input:      "so\rme\tte\x1bxt",
			wantPlain:  "sometext",
			wantStyled: "sometext",
			wantLength: 8,
		},
		{
			name:       "only sgr survives styled parse",
			input:      "(\x1b[?25h)(\x1b[1;31m)(\x1b[1B)",
			wantPlain:  "()()()",
			wantStyled: "()(\x1b[1;31m)()",
			wantLength: 6,
		},
		{name: "lone escape", input: "\x1b", wantPlain: "", wantStyled: "", wantLength: 0},
		{name: "csi prefix", input: "\x1b[", wantPlain: "", wantStyled: "", wantLength: 0},
		{name: "unterminated csi", input: "\x1b[0000", wantPlain: "", wantStyled: "", wantLength: 0},
		{
			name:       "escape at the end",
			input:      "escattheend\x1b",
			wantPlain:  "escattheend",
			wantStyled: "escattheend",
			wantLength: 11,
		},
		{
			name:       "csi at the end",
			input:      "csiattheend\x1b[",
			wantPlain:  "csiattheend",
			wantStyled: "csiattheend",
			wantLength: 11,
		},
		{
			name:       "multibyte content",
			input:      "h\x1b[1mé\x1b[0m!",
			wantPlain:  "hé!",
			wantStyled: "h\x1b[1mé\x1b[0m!",
			wantLength: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := Plain(tt.input)
			styled := Styled(tt.input)

			assert.Equal(t, tt.wantPlain, plain.String())
			assert.Equal(t, tt.wantStyled, styled.String())
			assert.Equal(t, tt.wantLength, plain.ContentLength())
			assert.Equal(t, tt.wantLength, styled.ContentLength())
			assert.Equal(t, tt.wantPlain, styled.Content())
			assert.LessOrEqual(t, styled.ContentLength(), len([]rune(tt.input)))
		})
	}
}

func TestParse_NoControlsKeepsInput(t *testing.T) {
	for _, input := range []string{"", "some text", "ünïcödé"} {
		plain := Plain(input)
		styled := Styled(input)
		assert.Equal(t, input, plain.String())
		assert.True(t, plain.Equal(styled))
		assert.Equal(t, len([]rune(input)), plain.ContentLength())
	}
}

func TestAddEllipsis(t *testing.T) {
	text := Styled("t\x1b[1;31mest")
	require.Equal(t, 4, text.ContentLength())

	tests := []struct {
		maxLength int
		want      string
	}{
		{maxLength: -1, want: ""},
		{maxLength: 0, want: ""},
		{maxLength: 1, want: "…"},
		{maxLength: 2, want: "t…"},
		{maxLength: 3, want: "t\x1b[1;31me…"},
		{maxLength: 4, want: "t\x1b[1;31mest"},
		{maxLength: 5, want: "t\x1b[1;31mest"},
	}

	for _, tt := range tests {
		got := text.AddEllipsis(tt.maxLength)
		assert.Equal(t, tt.want, got.String(), "maxLength=%d", tt.maxLength)
		if tt.maxLength > 0 {
			assert.Equal(t, min(tt.maxLength, 4), got.ContentLength(), "maxLength=%d", tt.maxLength)
		}
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Plain("ab").Fit(5).String())
	assert.Equal(t, "abc…", Plain("abcdef").Fit(4).String())
	assert.Equal(t, 3, Styled("\x1b[1mab").Fit(3).ContentLength())
	assert.True(t, Plain("abc").Fit(0).IsEmpty())
}

func TestConcat(t *testing.T) {
	a := Styled("\x1b[1ma")
	b := Plain("bc")
	c := Plain("d")

	got := Concat(a, b, c)
	assert.Equal(t, "\x1b[1mabcd", got.String())
	assert.Equal(t, 4, got.ContentLength())

	assert.True(t, Concat(Concat(a, b), c).Equal(Concat(a, Concat(b, c))))
	assert.True(t, a.Append(Empty).Equal(a))
	assert.True(t, Empty.Append(a).Equal(a))
	assert.True(t, Concat().Equal(Empty))
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string // lines joined with "|"
	}{
		{input: "text", width: 1, want: "t|e|x|t"},
		{input: "text", width: 2, want: "te|xt"},
		{input: "text", width: 3, want: "tex|t"},
		{input: "text", width: 4, want: "text"},
		{input: "text", width: 5, want: "text"},
		{input: "abc abc", width: 3, want: "abc| ab|c"},
		{input: "abc abc", width: 5, want: "abc |abc"},
		{input: "abc abc", width: 7, want: "abc abc"},
		{input: "abc abc abc", width: 7, want: "abc abc| abc"},
		{input: "abc abc abc", width: 8, want: "abc abc |abc"},
		{input: "abc abc abc", width: 9, want: "abc abc |abc"},
		{input: "    ", width: 2, want: "  |  "},
		{input: " ab", width: 2, want: " a|b"},
		{input: "   ab", width: 2, want: "  | a|b"},
		{input: "a  b", width: 2, want: "a | b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lines := Plain(tt.input).WordWrap(tt.width)

			parts := make([]string, 0, len(lines))
			for _, line := range lines {
				assert.LessOrEqual(t, line.ContentLength(), tt.width)
				parts = append(parts, line.String())
			}
			assert.Equal(t, tt.want, strings.Join(parts, "|"), "width=%d", tt.width)
			assert.Equal(t, tt.input, Concat(lines...).String())
		})
	}
}

func TestWordWrap_Edges(t *testing.T) {
	assert.Nil(t, Plain("abc").WordWrap(0))
	assert.Nil(t, Plain("abc").WordWrap(-3))

	lines := Empty.WordWrap(3)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].IsEmpty())
}

func TestWordWrap_StylesFollowText(t *testing.T) {
	lines := Styled("ab\x1b[31mcd").WordWrap(2)

	require.Len(t, lines, 2)
	assert.Equal(t, "ab", lines[0].String())
	assert.Equal(t, "\x1b[31mcd", lines[1].String())
	assert.Equal(t, 2, lines[1].ContentLength())
}
