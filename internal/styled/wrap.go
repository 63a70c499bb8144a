package styled

import (
	"unicode"
	"unicode/utf8"
)

// lineState tracks the line being filled by WordWrap. Offsets index into the
// raw string of the text being wrapped.
type lineState struct {
	start       int  // offset where the line begins
	length      int  // visible characters so far
	runeEnd     int  // offset just past the last visible character
	boundary    int  // offset of the last break opportunity, -1 if none
	boundaryLen int  // visible characters before boundary
	afterWord   bool // last visible character was not whitespace
}

func newLine(start int) lineState {
	return lineState{start: start, runeEnd: start, boundary: -1}
}

// WordWrap splits the text into lines of at most width visible characters.
//
// A full line breaks before incoming whitespace, otherwise after the last
// whitespace that follows a word on the line, otherwise exactly at the width.
// No characters are dropped: joining the lines gives back the original content.
// Style sequences stay attached to the text that follows them.
func (t Text) WordWrap(width int) []Text {
	if width < 1 {
		return nil
	}
	if t.length <= width {
		return []Text{t}
	}

	raw := t.raw
	var lines []Text
	line := newLine(0)

	for i := 0; i < len(raw); {
		if raw[i] == esc {
			n, _ := ScanSequence(raw[i:])
			i += n
			continue
		}

		r, size := utf8.DecodeRuneInString(raw[i:])
		space := unicode.IsSpace(r)

		if line.length == width {
			if !space && line.boundary >= 0 {
				lines = append(lines, Text{raw: raw[line.start:line.boundary], length: line.boundaryLen})
				// Rescan the tail so its break state reflects the new line.
				i = line.boundary
				line = newLine(i)
				continue
			}
			lines = append(lines, Text{raw: raw[line.start:line.runeEnd], length: line.length})
			line = newLine(line.runeEnd)
		}

		line.length++
		line.runeEnd = i + size
		if space && line.afterWord {
			line.boundary = line.runeEnd
			line.boundaryLen = line.length
		}
		line.afterWord = !space
		i += size
	}

	return append(lines, Text{raw: raw[line.start:], length: line.length})
}
