// Package styled provides an immutable display string that understands
// terminal escape sequences.
//
// Key features:
//   - Parsing that strips control characters and non-style escape sequences
//   - Optional preservation of SGR (color and attribute) sequences
//   - Visible length measured in characters, ignoring styles
//   - Ellipsis truncation, padding and greedy word wrapping that keep styles
package styled
