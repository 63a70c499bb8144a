// Package layout divides the widget area between the list pane and the
// optional preview pane.
package layout

import (
	"fmt"
	"strings"
)

const (
	// minimumPaneSize is the smallest size either pane is squeezed to by an explicit split.
	minimumPaneSize = 2

	// separatorSize is the width of the line drawn between side-by-side panes.
	separatorSize = 1
)

// Kind tells single-pane and split layouts apart.
type Kind int

const (
	// KindSingle shows only the list.
	KindSingle Kind = iota
	// KindSplit shows the list beside or above the preview.
	KindSplit
)

// Direction is the axis along which a split layout places its panes.
type Direction int

const (
	// Horizontal places the panes side by side with a separator.
	Horizontal Direction = iota
	// Vertical stacks the list above the preview.
	Vertical
)

// ParseDirection reads "horizontal" or "vertical".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Pane identifies one of the panes.
type Pane int

const (
	// PaneList is the selectable list.
	PaneList Pane = iota
	// PanePreview is the preview of the highlighted item.
	PanePreview
)

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a positioned area in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the area has no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout is the area assignment for the current terminal size. Areas are
// recomputed from scratch on every Resize.
type Layout struct {
	kind      Kind
	direction Direction
	split     *Dimension
	listMax   Size
	active    Pane

	size      Size
	list      Rect
	preview   Rect
	separator Rect
}

// NewSingle returns a layout showing only the list, no larger than listMax.
// A non-positive listMax component leaves that axis unbounded.
func NewSingle(listMax Size) *Layout {
	return &Layout{kind: KindSingle, listMax: listMax}
}

// NewSplit returns a two-pane layout. A nil split gives the list its natural
// size up to half of the available space.
func NewSplit(listMax Size, direction Direction, split *Dimension) *Layout {
	return &Layout{kind: KindSplit, listMax: listMax, direction: direction, split: split}
}

// Resize recomputes every area for a width by height region.
func (l *Layout) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	l.size = Size{Width: width, Height: height}
	l.list, l.preview, l.separator = Rect{}, Rect{}, Rect{}

	if l.kind == KindSingle {
		l.list = Rect{Width: bounded(width, l.listMax.Width), Height: bounded(height, l.listMax.Height)}
		return
	}

	switch l.direction {
	case Vertical:
		listHeight := l.listExtent(height, l.listMax.Height, 0)
		l.list = Rect{Width: width, Height: listHeight}
		l.preview = Rect{Y: listHeight, Width: width, Height: height - listHeight}
	default:
		listWidth := l.listExtent(width, l.listMax.Width, separatorSize)
		l.list = Rect{Width: listWidth, Height: height}
		if listWidth < width {
			l.separator = Rect{X: listWidth, Width: separatorSize, Height: height}
		}
		l.preview = Rect{
			X:      listWidth + separatorSize,
			Width:  max(0, width-listWidth-separatorSize),
			Height: height,
		}
	}
}

// listExtent returns the list size along the split axis.
func (l *Layout) listExtent(total, natural, separator int) int {
	var extent int
	if l.split != nil {
		extent = min(max(l.split.Resolve(total), minimumPaneSize), total-separator-minimumPaneSize)
	} else {
		extent = bounded(total/2, natural) //nolint:mnd // half of the space
	}
	return min(max(extent, 0), total)
}

func bounded(available, limit int) int {
	if limit <= 0 {
		return available
	}
	return min(available, limit)
}

// SwitchActivePane moves input focus to the other pane. It reports false and
// does nothing for a single-pane layout.
func (l *Layout) SwitchActivePane() bool {
	if l.kind != KindSplit {
		return false
	}
	if l.active == PaneList {
		l.active = PanePreview
	} else {
		l.active = PaneList
	}
	return true
}

// ActivePane returns the pane receiving input.
func (l *Layout) ActivePane() Pane {
	return l.active
}

// Kind returns whether the layout is single or split.
func (l *Layout) Kind() Kind {
	return l.kind
}

// Direction returns the split axis.
func (l *Layout) Direction() Direction {
	return l.direction
}

// Size returns the region passed to the last Resize.
func (l *Layout) Size() Size {
	return l.size
}

// ListArea returns the list pane area.
func (l *Layout) ListArea() Rect {
	return l.list
}

// PreviewArea returns the preview pane area, if the layout has one.
func (l *Layout) PreviewArea() (Rect, bool) {
	return l.preview, l.kind == KindSplit
}

// SeparatorArea returns the line between side-by-side panes.
func (l *Layout) SeparatorArea() (Rect, bool) {
	return l.separator, !l.separator.Empty()
}
