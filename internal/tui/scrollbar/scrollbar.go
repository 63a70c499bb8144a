// Package scrollbar computes how a scrollbar track is split into the regions
// before, on and after the thumb.
package scrollbar

import "strings"

// Glyphs used to draw scrollbars.
const (
	VerticalBar     = '│'
	VerticalThumb   = '┃'
	HorizontalBar   = '─'
	HorizontalThumb = '━'
)

// Layout is the split of a track into three consecutive regions.
type Layout struct {
	Leading  int
	Thumb    int
	Trailing int
}

// Compute lays out a track of trackSize cells for a view showing pageSize
// entries starting at scrollOffset out of totalCount.
//
// Without content the thumb fills the track. Otherwise the thumb is
// proportional to the visible share (at least one cell) and the leading region
// proportional to the offset, both rounded half up. The regions always add up
// to trackSize.
func Compute(trackSize, scrollOffset, pageSize, totalCount int) Layout {
	if trackSize <= 0 {
		return Layout{}
	}
	if totalCount <= 0 {
		return Layout{Thumb: trackSize}
	}

	visible := min(totalCount, max(pageSize, 0))
	thumb := min(trackSize, max(1, roundedShare(visible, trackSize, totalCount)))
	leading := max(0, roundedShare(scrollOffset, trackSize, totalCount))
	if leading+thumb > trackSize {
		leading = trackSize - thumb
	}

	return Layout{
		Leading:  leading,
		Thumb:    thumb,
		Trailing: trackSize - thumb - leading,
	}
}

// roundedShare returns a*b/c rounded half up.
func roundedShare(a, b, c int) int {
	return (2*a*b + c) / (2 * c)
}

// TotalSize returns the track size the layout covers.
func (l Layout) TotalSize() int {
	return l.Leading + l.Thumb + l.Trailing
}

// OnThumb reports whether the cell at offset lies on the thumb.
func (l Layout) OnThumb(offset int) bool {
	return offset >= l.Leading && offset < l.Leading+l.Thumb
}

// Glyph returns the rune for the cell at offset.
func (l Layout) Glyph(offset int, bar, thumb rune) rune {
	if l.OnThumb(offset) {
		return thumb
	}
	return bar
}

// Render draws the whole track.
func (l Layout) Render(bar, thumb rune) string {
	var b strings.Builder
	b.Grow(l.TotalSize() * 3) //nolint:mnd // box drawing glyphs are three bytes in UTF-8
	for i := range l.TotalSize() {
		b.WriteRune(l.Glyph(i, bar, thumb))
	}
	return b.String()
}
