package styled

// Control bytes recognised by the sequence scanner.
const (
	esc = 0x1b
	bel = 0x07
)

// CSI final bytes fall in this inclusive range.
const (
	csiFinalMin = 0x40
	csiFinalMax = 0x7e
)

// SequenceKind classifies a scanned escape sequence.
type SequenceKind int

const (
	// SequenceUnknown is any sequence that carries no style and is stripped.
	SequenceUnknown SequenceKind = iota
	// SequenceSGR is a Select Graphic Rendition sequence (CSI ... m).
	SequenceSGR
)

// String returns the kind name for logs and test failures.
func (k SequenceKind) String() string {
	if k == SequenceSGR {
		return "sgr"
	}
	return "unknown"
}

// ScanSequence measures the escape sequence at the start of s, which must begin
// with ESC. It returns the sequence length in bytes (always at least 1) and its
// kind. Unterminated sequences run to the end of s.
func ScanSequence(s string) (int, SequenceKind) {
	if len(s) < 2 || s[0] != esc {
		return 1, SequenceUnknown
	}

	switch s[1] {
	case '[':
		for j := 2; j < len(s); j++ {
			b := s[j]
			if b >= csiFinalMin && b <= csiFinalMax {
				if b == 'm' {
					return j + 1, SequenceSGR
				}
				return j + 1, SequenceUnknown
			}
		}
		return len(s), SequenceUnknown

	case ']', 'P', 'X', '^', '_':
		// OSC, DCS, SOS, PM and APC run until BEL or the string terminator ESC \.
		for j := 2; j < len(s); j++ {
			if s[j] == bel {
				return j + 1, SequenceUnknown
			}
			if s[j] == esc && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2, SequenceUnknown
			}
		}
		return len(s), SequenceUnknown

	default:
		return 1, SequenceUnknown
	}
}
