package listview

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Construction and resize preconditions. Compare with errors.Is().
var (
	// ErrInvalidPageSize indicates a page size below one row.
	ErrInvalidPageSize = constError("page size must be positive")

	// ErrScrollOffsetOutOfRange indicates an initial scroll offset outside [0, max(0, n-pageSize)].
	ErrScrollOffsetOutOfRange = constError("scroll offset out of range")

	// ErrHighlightOutOfRange indicates an initial highlighted index outside the item list.
	ErrHighlightOutOfRange = constError("highlighted index out of range")

	// ErrSelectionOutOfRange indicates an initially selected index outside the item list.
	ErrSelectionOutOfRange = constError("selected index out of range")
)
