package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// maxPercent is the largest accepted percentage.
const maxPercent = 100

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidDimension indicates a split size that is neither a cell count nor a percentage.
	ErrInvalidDimension = constError("invalid dimension")

	// ErrInvalidDirection indicates an unknown split direction name.
	ErrInvalidDirection = constError("invalid split direction")
)

// Dimension is a size along one axis, either a number of cells or a
// percentage of the available space.
type Dimension struct {
	value   int
	percent bool
}

// Absolute returns a dimension of n cells.
func Absolute(n int) Dimension {
	return Dimension{value: max(n, 0)}
}

// Percent returns a dimension of p percent, clamped to [0, 100].
func Percent(p int) Dimension {
	return Dimension{value: min(max(p, 0), maxPercent), percent: true}
}

// ParseDimension parses "40" as 40 cells and "30%" as 30 percent.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	number, isPercent := strings.CutSuffix(s, "%")

	n, err := strconv.Atoi(number)
	if err != nil {
		return Dimension{}, fmt.Errorf("%w %q: %w", ErrInvalidDimension, s, err)
	}
	if n < 0 {
		return Dimension{}, fmt.Errorf("%w %q: must not be negative", ErrInvalidDimension, s)
	}
	if isPercent {
		if n > maxPercent {
			return Dimension{}, fmt.Errorf("%w %q: percentage above %d", ErrInvalidDimension, s, maxPercent)
		}
		return Percent(n), nil
	}
	return Absolute(n), nil
}

// IsPercent reports whether the dimension is relative.
func (d Dimension) IsPercent() bool {
	return d.percent
}

// Value returns the cell count or percentage.
func (d Dimension) Value() int {
	return d.value
}

// Resolve converts the dimension to cells out of total.
func (d Dimension) Resolve(total int) int {
	if d.percent {
		return total * d.value / maxPercent
	}
	return d.value
}

// String formats the dimension the way ParseDimension reads it.
func (d Dimension) String() string {
	if d.percent {
		return strconv.Itoa(d.value) + "%"
	}
	return strconv.Itoa(d.value)
}
