package styled

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ellipsis is appended by AddEllipsis when text is shortened.
const ellipsis = '…'

// Text is an immutable display string. Its raw form may contain SGR sequences
// which never count toward the content length.
type Text struct {
	raw    string
	length int
}

// Empty is the empty Text, the identity for Concat.
//
//nolint:gochecknoglobals // Immutable zero value exposed for readability.
var Empty = Text{}

// Plain parses raw and strips every escape sequence and control character.
func Plain(raw string) Text {
	return Parse(raw, false)
}

// Styled parses raw keeping SGR sequences and stripping everything else.
func Styled(raw string) Text {
	return Parse(raw, true)
}

// Parse builds a Text from arbitrary input. Control characters are dropped, SGR
// sequences are kept only when keepStyle is set and all other escape sequences
// are removed.
func Parse(raw string, keepStyle bool) Text {
	if strings.IndexFunc(raw, unicode.IsControl) < 0 {
		return Text{raw: raw, length: utf8.RuneCountInString(raw)}
	}

	var b strings.Builder
	b.Grow(len(raw))
	length := 0

	for i := 0; i < len(raw); {
		if raw[i] == esc {
			n, kind := ScanSequence(raw[i:])
			if keepStyle && kind == SequenceSGR {
				b.WriteString(raw[i : i+n])
			}
			i += n
			continue
		}

		r, size := utf8.DecodeRuneInString(raw[i:])
		if !unicode.IsControl(r) {
			b.WriteString(raw[i : i+size])
			length++
		}
		i += size
	}

	return Text{raw: b.String(), length: length}
}

// String returns the raw form, including any preserved SGR sequences.
func (t Text) String() string {
	return t.raw
}

// ContentLength returns the number of visible characters.
func (t Text) ContentLength() int {
	return t.length
}

// IsEmpty reports whether the text has no raw content at all.
func (t Text) IsEmpty() bool {
	return t.raw == ""
}

// IsStyled reports whether the raw form carries any SGR sequence.
func (t Text) IsStyled() bool {
	return strings.IndexByte(t.raw, esc) >= 0
}

// Equal compares two texts structurally.
func (t Text) Equal(other Text) bool {
	return t.raw == other.raw
}

// Content returns only the visible characters.
func (t Text) Content() string {
	if !t.IsStyled() {
		return t.raw
	}
	return Plain(t.raw).raw
}

// AddEllipsis shortens the text to at most maxLength visible characters, ending
// in an ellipsis when anything was cut. Styles before the cut are kept.
func (t Text) AddEllipsis(maxLength int) Text {
	if maxLength < 1 {
		return Empty
	}
	if t.length <= maxLength {
		return t
	}

	var b strings.Builder
	copied := 0
	for i := 0; i < len(t.raw) && copied < maxLength-1; {
		if t.raw[i] == esc {
			n, _ := ScanSequence(t.raw[i:])
			b.WriteString(t.raw[i : i+n])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(t.raw[i:])
		b.WriteString(t.raw[i : i+size])
		i += size
		copied++
	}
	b.WriteRune(ellipsis)

	return Text{raw: b.String(), length: maxLength}
}

// Fit returns the text shortened or right-padded with spaces to exactly width
// visible characters.
func (t Text) Fit(width int) Text {
	if width < 1 {
		return Empty
	}
	fitted := t.AddEllipsis(width)
	if pad := width - fitted.length; pad > 0 {
		return Text{raw: fitted.raw + strings.Repeat(" ", pad), length: width}
	}
	return fitted
}

// Append returns t followed by other.
func (t Text) Append(other Text) Text {
	return Text{raw: t.raw + other.raw, length: t.length + other.length}
}

// Concat joins texts in order.
func Concat(parts ...Text) Text {
	switch len(parts) {
	case 0:
		return Empty
	case 1:
		return parts[0]
	}

	var b strings.Builder
	length := 0
	for _, p := range parts {
		b.WriteString(p.raw)
		length += p.length
	}
	return Text{raw: b.String(), length: length}
}
