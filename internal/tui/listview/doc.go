// Package listview provides the filtering, highlighting and selection engine
// behind the list pane.
//
// The engine owns no rendering: it keeps the state a pane needs to draw one
// page of items. Key features:
//   - Incremental filtering with a caller-supplied predicate
//   - Highlight navigation by item, page, first and last with optional range toggling
//   - Multi-selection scoped to the visible items
//   - Highlight change notifications keyed on item identity, not position
//   - Page resizing that keeps the highlighted item on screen
package listview
