package listview

import (
	"fmt"
	"slices"
)

// noHighlight marks the absence of a highlighted item.
const noHighlight = -1

// FilterFunc reports whether item matches the non-empty filter text.
type FilterFunc[T any] func(item T, filter string) bool

// HighlightObserver receives the newly highlighted item. ok is false when no
// item is highlighted any more.
type HighlightObserver[T any] func(item T, ok bool)

// Row is one entry of the current page.
type Row[T any] struct {
	// Index is the position within the visible items.
	Index       int
	Value       T
	Selected    bool
	Highlighted bool
}

// Option configures the initial state of a ListView.
type Option func(*settings)

type settings struct {
	scrollOffset int
	highlighted  int
	hasHighlight bool
	selected     []int
}

// WithScrollOffset sets the first row shown on the initial page.
func WithScrollOffset(offset int) Option {
	return func(s *settings) { s.scrollOffset = offset }
}

// WithHighlightedIndex sets the initially highlighted item.
func WithHighlightedIndex(index int) Option {
	return func(s *settings) {
		s.highlighted = index
		s.hasHighlight = true
	}
}

// WithSelectedIndices marks items as selected before the session starts.
func WithSelectedIndices(indices ...int) Option {
	return func(s *settings) { s.selected = append(s.selected, indices...) }
}

// ListView keeps a filtered, scrollable, multi-selectable view over a fixed
// list of items. Every mutation leaves the view in a consistent state: when
// anything is visible an item is highlighted and the page contains it, and the
// page never runs past the last visible item.
//
// Items are identified by their position in the original list, so highlight and
// selection survive filtering regardless of T.
type ListView[T any] struct {
	// items is the original list, fixed for the session
	items []T

	// selected holds one flag per original item
	selected []bool

	// visible lists original positions that pass the filter, in original order
	visible []int

	matches  FilterFunc[T]
	observer HighlightObserver[T]
	filter   string

	// highlighted indexes into visible, or noHighlight
	highlighted int

	scrollOffset int
	pageSize     int
}

// New creates a list view over items showing pageSize rows at a time.
// matches is only consulted for non-empty filters.
func New[T any](items []T, pageSize int, matches FilterFunc[T], opts ...Option) (*ListView[T], error) {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	n := len(items)
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	if s.scrollOffset < 0 || s.scrollOffset > max(0, n-pageSize) {
		return nil, fmt.Errorf("%w: %d for %d items and page size %d",
			ErrScrollOffsetOutOfRange, s.scrollOffset, n, pageSize)
	}
	if s.hasHighlight && (s.highlighted < 0 || s.highlighted >= n) {
		return nil, fmt.Errorf("%w: %d for %d items", ErrHighlightOutOfRange, s.highlighted, n)
	}

	lv := &ListView[T]{
		items:        items,
		selected:     make([]bool, n),
		visible:      make([]int, n),
		matches:      matches,
		highlighted:  noHighlight,
		scrollOffset: s.scrollOffset,
		pageSize:     pageSize,
	}
	for i := range lv.visible {
		lv.visible[i] = i
	}
	for _, idx := range s.selected {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: %d for %d items", ErrSelectionOutOfRange, idx, n)
		}
		lv.selected[idx] = true
	}
	if s.hasHighlight {
		lv.highlighted = s.highlighted
	}

	lv.restoreInvariants()
	return lv, nil
}

// OnHighlightChanged registers the observer called whenever an operation
// changes which item is highlighted. Pass nil to remove it.
func (lv *ListView[T]) OnHighlightChanged(fn HighlightObserver[T]) {
	lv.observer = fn
}

// SetFilter recomputes the visible items. Items hidden by the filter lose their
// selection. The highlighted item stays highlighted while it remains visible.
func (lv *ListView[T]) SetFilter(filter string) {
	before := lv.highlightedHandle()

	lv.filter = filter
	lv.visible = lv.visible[:0]
	for h, item := range lv.items {
		if filter == "" || lv.matches(item, filter) {
			lv.visible = append(lv.visible, h)
			continue
		}
		lv.selected[h] = false
	}

	lv.highlighted = noHighlight
	if before != noHighlight {
		if idx, found := slices.BinarySearch(lv.visible, before); found {
			lv.highlighted = idx
		}
	}

	lv.commit(before)
}

// Filter returns the active filter text.
func (lv *ListView[T]) Filter() string {
	return lv.filter
}

// HighlightPrevious moves the highlight one item up.
func (lv *ListView[T]) HighlightPrevious(extend bool) {
	lv.moveHighlight(lv.highlighted-1, extend)
}

// HighlightNext moves the highlight one item down.
func (lv *ListView[T]) HighlightNext(extend bool) {
	lv.moveHighlight(lv.highlighted+1, extend)
}

// HighlightPageUp moves the highlight one page up, keeping one row of overlap.
func (lv *ListView[T]) HighlightPageUp(extend bool) {
	lv.moveHighlight(lv.highlighted-lv.pageStep(), extend)
}

// HighlightPageDown moves the highlight one page down, keeping one row of overlap.
func (lv *ListView[T]) HighlightPageDown(extend bool) {
	lv.moveHighlight(lv.highlighted+lv.pageStep(), extend)
}

// HighlightFirst moves the highlight to the first visible item.
func (lv *ListView[T]) HighlightFirst(extend bool) {
	lv.moveHighlight(0, extend)
}

// HighlightLast moves the highlight to the last visible item.
func (lv *ListView[T]) HighlightLast(extend bool) {
	lv.moveHighlight(len(lv.visible)-1, extend)
}

// SetHighlightedIndex highlights the visible item at index, clamped to the
// visible range.
func (lv *ListView[T]) SetHighlightedIndex(index int) {
	lv.moveHighlight(index, false)
}

func (lv *ListView[T]) pageStep() int {
	return max(1, lv.pageSize-1)
}

// moveHighlight highlights the clamped candidate. With extend, every item from
// the current highlight up to (not including) the candidate is toggled, or the
// current item alone when the highlight cannot move.
func (lv *ListView[T]) moveHighlight(candidate int, extend bool) {
	if len(lv.visible) == 0 {
		return
	}
	before := lv.highlightedHandle()

	target := min(max(candidate, 0), len(lv.visible)-1)
	if extend && lv.highlighted != noHighlight {
		lv.toggleRange(lv.highlighted, target)
	}
	lv.highlighted = target

	lv.commit(before)
}

func (lv *ListView[T]) toggleRange(from, to int) {
	switch {
	case from < to:
		for i := from; i < to; i++ {
			lv.toggleAt(i)
		}
	case from > to:
		for i := from; i > to; i-- {
			lv.toggleAt(i)
		}
	default:
		lv.toggleAt(from)
	}
}

func (lv *ListView[T]) toggleAt(index int) {
	h := lv.visible[index]
	lv.selected[h] = !lv.selected[h]
}

// ToggleSelection flips the selection of the highlighted item.
func (lv *ListView[T]) ToggleSelection() {
	if lv.highlighted != noHighlight {
		lv.toggleAt(lv.highlighted)
	}
}

// SelectAll selects every visible item.
func (lv *ListView[T]) SelectAll() {
	for _, h := range lv.visible {
		lv.selected[h] = true
	}
}

// UnselectAll clears the selection of every visible item.
func (lv *ListView[T]) UnselectAll() {
	for _, h := range lv.visible {
		lv.selected[h] = false
	}
}

// InvertSelection flips the selection of every visible item.
func (lv *ListView[T]) InvertSelection() {
	for _, h := range lv.visible {
		lv.selected[h] = !lv.selected[h]
	}
}

// SelectedItems returns the explicitly selected items in original order. With
// no explicit selection it returns the highlighted item, and nothing only when
// no item is visible.
func (lv *ListView[T]) SelectedItems() []T {
	var result []T
	for h, sel := range lv.selected {
		if sel {
			result = append(result, lv.items[h])
		}
	}
	if len(result) > 0 {
		return result
	}
	if item, ok := lv.Highlighted(); ok {
		return []T{item}
	}
	return nil
}

// SelectedCount returns the number of explicitly selected items.
func (lv *ListView[T]) SelectedCount() int {
	count := 0
	for _, sel := range lv.selected {
		if sel {
			count++
		}
	}
	return count
}

// Resize changes the number of rows per page. The highlighted item keeps its
// position on screen unless the new page no longer contains it.
func (lv *ListView[T]) Resize(pageSize int) error {
	if pageSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	before := lv.highlightedHandle()
	lv.pageSize = pageSize
	lv.commit(before)
	return nil
}

// commit restores the invariants and notifies the observer if the highlighted
// item is no longer the one identified by before.
func (lv *ListView[T]) commit(before int) {
	lv.restoreInvariants()

	after := lv.highlightedHandle()
	if after == before || lv.observer == nil {
		return
	}
	if after == noHighlight {
		var zero T
		lv.observer(zero, false)
		return
	}
	lv.observer(lv.items[after], true)
}

func (lv *ListView[T]) restoreInvariants() {
	n := len(lv.visible)
	if n == 0 {
		lv.highlighted = noHighlight
		lv.scrollOffset = 0
		return
	}

	if lv.highlighted == noHighlight {
		lv.highlighted = 0
	}
	lv.highlighted = min(max(lv.highlighted, 0), n-1)

	if lv.highlighted < lv.scrollOffset {
		lv.scrollOffset = lv.highlighted
	}
	if lv.highlighted >= lv.scrollOffset+lv.pageSize {
		lv.scrollOffset = lv.highlighted - lv.pageSize + 1
	}
	lv.scrollOffset = max(0, min(lv.scrollOffset, n-lv.pageSize))
}

// highlightedHandle returns the original position of the highlighted item.
func (lv *ListView[T]) highlightedHandle() int {
	if lv.highlighted == noHighlight {
		return noHighlight
	}
	return lv.visible[lv.highlighted]
}

// Len returns the number of visible items.
func (lv *ListView[T]) Len() int {
	return len(lv.visible)
}

// TotalLen returns the number of original items.
func (lv *ListView[T]) TotalLen() int {
	return len(lv.items)
}

// HighlightedIndex returns the highlighted position within the visible items.
func (lv *ListView[T]) HighlightedIndex() (int, bool) {
	return lv.highlighted, lv.highlighted != noHighlight
}

// Highlighted returns the highlighted item.
func (lv *ListView[T]) Highlighted() (T, bool) {
	if lv.highlighted == noHighlight {
		var zero T
		return zero, false
	}
	return lv.items[lv.visible[lv.highlighted]], true
}

// ScrollOffset returns the visible index of the first row on the page.
func (lv *ListView[T]) ScrollOffset() int {
	return lv.scrollOffset
}

// PageSize returns the number of rows per page.
func (lv *ListView[T]) PageSize() int {
	return lv.pageSize
}

// At returns the visible item at index.
func (lv *ListView[T]) At(index int) T {
	return lv.items[lv.visible[index]]
}

// IsSelected reports whether the visible item at index is selected.
func (lv *ListView[T]) IsSelected(index int) bool {
	return lv.selected[lv.visible[index]]
}

// Items returns the visible items in original order.
func (lv *ListView[T]) Items() []T {
	result := make([]T, len(lv.visible))
	for i, h := range lv.visible {
		result[i] = lv.items[h]
	}
	return result
}

// Page returns the rows on the current page.
func (lv *ListView[T]) Page() []Row[T] {
	end := min(lv.scrollOffset+lv.pageSize, len(lv.visible))
	rows := make([]Row[T], 0, max(0, end-lv.scrollOffset))
	for i := lv.scrollOffset; i < end; i++ {
		h := lv.visible[i]
		rows = append(rows, Row[T]{
			Index:       i,
			Value:       lv.items[h],
			Selected:    lv.selected[h],
			Highlighted: i == lv.highlighted,
		})
	}
	return rows
}
