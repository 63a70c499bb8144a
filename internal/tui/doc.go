// Package tui hosts the interactive picker: the list and preview panes, the
// surfaces they draw on, and the Bubble Tea model tying them together.
//
// The picker runs inline below the prompt by default, occupying a fixed number
// of rows, and clears itself when it exits. Items reach the picker fully
// resolved; the package never calls back into the item source.
//
// Key features:
//   - Filter-as-you-type with substring or fuzzy matching
//   - Multi-selection with toggle, range extension, select all and invert
//   - Optional preview pane beside or below the list, with its own scrolling
//   - Rebindable keys and a configurable color theme
package tui
