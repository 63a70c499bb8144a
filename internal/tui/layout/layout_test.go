package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input       string
		wantValue   int
		wantPercent bool
		wantErr     bool
	}{
		{input: "41", wantValue: 41},
		{input: "0", wantValue: 0},
		{input: "73%", wantValue: 73, wantPercent: true},
		{input: " 100% ", wantValue: 100, wantPercent: true},
		{input: "101%", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "%", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDimension(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDimension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, d.Value())
			assert.Equal(t, tt.wantPercent, d.IsPercent())
		})
	}
}

func TestDimension_Resolve(t *testing.T) {
	assert.Equal(t, 30, Percent(30).Resolve(100))
	assert.Equal(t, 24, Percent(30).Resolve(80))
	assert.Equal(t, 12, Absolute(12).Resolve(80))
	assert.Equal(t, 100, Percent(150).Value())
	assert.Equal(t, 0, Absolute(-5).Value())
	assert.Equal(t, "30%", Percent(30).String())
	assert.Equal(t, "12", Absolute(12).String())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, d)

	d, err = ParseDirection("horizontal")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, d)

	_, err = ParseDirection("diagonal")
	require.ErrorIs(t, err, ErrInvalidDirection)
}

func TestSingle(t *testing.T) {
	l := NewSingle(Size{Width: 30, Height: 10})
	l.Resize(80, 24)

	assert.Equal(t, Rect{Width: 30, Height: 10}, l.ListArea())
	_, ok := l.PreviewArea()
	assert.False(t, ok)
	_, ok = l.SeparatorArea()
	assert.False(t, ok)

	l.Resize(20, 5)
	assert.Equal(t, Rect{Width: 20, Height: 5}, l.ListArea())

	assert.False(t, l.SwitchActivePane())
	assert.Equal(t, PaneList, l.ActivePane())
	assert.Equal(t, KindSingle, l.Kind())
}

func TestSingle_UnboundedAxis(t *testing.T) {
	l := NewSingle(Size{Width: 0, Height: 4})
	l.Resize(50, 10)
	assert.Equal(t, Rect{Width: 50, Height: 4}, l.ListArea())
}

func TestSplit_Horizontal(t *testing.T) {
	tests := []struct {
		name        string
		listMax     Size
		split       *Dimension
		width       int
		wantList    int
		wantPreview int
	}{
		{name: "automatic uses natural width", listMax: Size{Width: 20}, width: 80, wantList: 20, wantPreview: 59},
		{name: "automatic caps at half", listMax: Size{Width: 60}, width: 80, wantList: 40, wantPreview: 39},
		{name: "absolute", listMax: Size{Width: 60}, split: ptr(Absolute(41)), width: 80, wantList: 41, wantPreview: 38},
		{name: "percent", listMax: Size{Width: 60}, split: ptr(Percent(25)), width: 80, wantList: 20, wantPreview: 59},
		{name: "clamped to minimum", split: ptr(Absolute(0)), width: 80, wantList: 2, wantPreview: 77},
		{name: "clamped to leave preview", split: ptr(Absolute(200)), width: 80, wantList: 77, wantPreview: 2},
		{name: "full percent leaves preview", split: ptr(Percent(100)), width: 10, wantList: 7, wantPreview: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewSplit(tt.listMax, Horizontal, tt.split)
			l.Resize(tt.width, 12)

			list := l.ListArea()
			preview, ok := l.PreviewArea()
			require.True(t, ok)
			separator, hasSeparator := l.SeparatorArea()
			require.True(t, hasSeparator)

			assert.Equal(t, Rect{Width: tt.wantList, Height: 12}, list)
			assert.Equal(t, Rect{X: tt.wantList, Width: 1, Height: 12}, separator)
			assert.Equal(t, Rect{X: tt.wantList + 1, Width: tt.wantPreview, Height: 12}, preview)
			assert.Equal(t, tt.width, list.Width+separator.Width+preview.Width)
		})
	}
}

func TestSplit_Vertical(t *testing.T) {
	l := NewSplit(Size{Width: 30, Height: 6}, Vertical, nil)
	l.Resize(40, 20)

	assert.Equal(t, Rect{Width: 40, Height: 6}, l.ListArea())
	preview, ok := l.PreviewArea()
	require.True(t, ok)
	assert.Equal(t, Rect{Y: 6, Width: 40, Height: 14}, preview)
	_, hasSeparator := l.SeparatorArea()
	assert.False(t, hasSeparator)

	split := Percent(75)
	l = NewSplit(Size{}, Vertical, &split)
	l.Resize(40, 20)
	assert.Equal(t, 15, l.ListArea().Height)
	preview, _ = l.PreviewArea()
	assert.Equal(t, 5, preview.Height)
	assert.Equal(t, Vertical, l.Direction())
}

func TestSplit_SwitchActivePane(t *testing.T) {
	l := NewSplit(Size{Width: 10}, Horizontal, nil)
	assert.Equal(t, PaneList, l.ActivePane())

	assert.True(t, l.SwitchActivePane())
	assert.Equal(t, PanePreview, l.ActivePane())

	assert.True(t, l.SwitchActivePane())
	assert.Equal(t, PaneList, l.ActivePane())
}

func TestResize_Idempotent(t *testing.T) {
	split := Percent(40)
	l := NewSplit(Size{Width: 50, Height: 10}, Horizontal, &split)

	l.Resize(100, 30)
	list, preview := l.ListArea(), l.preview

	l.Resize(33, 7)
	l.Resize(100, 30)
	assert.Equal(t, list, l.ListArea())
	assert.Equal(t, preview, l.preview)
	assert.Equal(t, Size{Width: 100, Height: 30}, l.Size())
}

func TestResize_TinyTerminal(t *testing.T) {
	l := NewSplit(Size{Width: 50}, Horizontal, ptr(Absolute(10)))
	l.Resize(3, 1)

	list := l.ListArea()
	preview, _ := l.PreviewArea()
	assert.GreaterOrEqual(t, list.Width, 0)
	assert.GreaterOrEqual(t, preview.Width, 0)
	assert.LessOrEqual(t, list.Width, 3)

	l.Resize(-1, -1)
	assert.True(t, l.ListArea().Empty())
}

func ptr(d Dimension) *Dimension {
	return &d
}
