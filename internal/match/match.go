// Package match provides the filter predicates applied to item labels.
package match

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Mode names accepted by ByName and the filter_mode setting.
const (
	ModeSubstring = "substring"
	ModeFuzzy     = "fuzzy"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownMode indicates a filter mode name that is not supported.
const ErrUnknownMode = constError("unknown filter mode")

// Func reports whether label matches the filter text.
type Func func(label, filter string) bool

// Substring matches when filter occurs in label, ignoring case.
func Substring(label, filter string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(label), folder.String(filter))
}

// Fuzzy matches when the characters of filter appear in label in order.
func Fuzzy(label, filter string) bool {
	return len(fuzzy.Find(filter, []string{label})) > 0
}

// Modes lists the supported mode names.
func Modes() []string {
	return []string{ModeSubstring, ModeFuzzy}
}

// ByName returns the predicate for a mode name. An empty name selects substring matching.
func ByName(mode string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeSubstring:
		return Substring, nil
	case ModeFuzzy:
		return Fuzzy, nil
	default:
		return nil, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownMode, mode, strings.Join(Modes(), ", "))
	}
}

