// Package scroll provides viewport and scrollbar primitives.
package scroll

import (
	"image"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
)

// Orientation describes scrollbar orientation.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Controller provides scroll control for widgets.
type Controller interface {
	ScrollBy(dx, dy int)
	ScrollTo(x, y int)
	PageBy(pages int)
	ScrollToStart()
	ScrollToEnd()
}

// Viewport tracks the visible region of scrollable content.
// Sizes are in cells; the offset is always clamped so the view stays inside
// the content.
type Viewport struct {
	offset   image.Point
	content  image.Point
	view     image.Point
	onChange func(offset image.Point)
}

// NewViewport creates an empty viewport.
func NewViewport() *Viewport {
	return &Viewport{}
}

// SetContentSize updates the content size and clamps the offset.
func (v *Viewport) SetContentSize(width, height int) {
	if v == nil {
		return
	}
	v.content = image.Point{X: max(width, 0), Y: max(height, 0)}
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ContentSize returns the content size.
func (v *Viewport) ContentSize() image.Point {
	if v == nil {
		return image.Point{}
	}
	return v.content
}

// SetViewSize updates the view size and clamps the offset.
func (v *Viewport) SetViewSize(width, height int) {
	if v == nil {
		return
	}
	v.view = image.Point{X: max(width, 0), Y: max(height, 0)}
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ViewSize returns the view size.
func (v *Viewport) ViewSize() image.Point {
	if v == nil {
		return image.Point{}
	}
	return v.view
}

// Offset returns the current offset.
func (v *Viewport) Offset() image.Point {
	if v == nil {
		return image.Point{}
	}
	return v.offset
}

// SetOnChange sets a callback for offset updates.
func (v *Viewport) SetOnChange(fn func(offset image.Point)) {
	if v == nil {
		return
	}
	v.onChange = fn
}

// SetOffset sets the scroll offset.
func (v *Viewport) SetOffset(x, y int) {
	if v == nil {
		return
	}
	next := clampOffset(image.Point{X: x, Y: y}, v.MaxOffset())
	if next == v.offset {
		return
	}
	v.offset = next
	if v.onChange != nil {
		v.onChange(v.offset)
	}
}

// ScrollBy adjusts the offset.
func (v *Viewport) ScrollBy(dx, dy int) {
	if v == nil {
		return
	}
	v.SetOffset(v.offset.X+dx, v.offset.Y+dy)
}

// ScrollTo scrolls to absolute coordinates.
func (v *Viewport) ScrollTo(x, y int) {
	v.SetOffset(x, y)
}

// PageBy scrolls vertically by whole view heights.
func (v *Viewport) PageBy(pages int) {
	if v == nil {
		return
	}
	v.ScrollBy(0, pages*max(v.view.Y, 1))
}

// ScrollToStart scrolls to the top.
func (v *Viewport) ScrollToStart() {
	if v == nil {
		return
	}
	v.SetOffset(v.offset.X, 0)
}

// ScrollToEnd scrolls to the bottom.
func (v *Viewport) ScrollToEnd() {
	if v == nil {
		return
	}
	v.SetOffset(v.offset.X, v.content.Y)
}

// MaxOffset returns the maximum scrollable offset.
func (v *Viewport) MaxOffset() image.Point {
	if v == nil {
		return image.Point{}
	}
	return image.Point{
		X: max(v.content.X-v.view.X, 0),
		Y: max(v.content.Y-v.view.Y, 0),
	}
}

// VisibleRect returns the visible rectangle within content.
func (v *Viewport) VisibleRect() image.Rectangle {
	if v == nil {
		return image.Rectangle{}
	}
	return image.Rectangle{Min: v.offset, Max: v.offset.Add(v.view)}.Intersect(
		image.Rectangle{Max: v.content})
}

func clampOffset(offset, limit image.Point) image.Point {
	offset.X = min(max(offset.X, 0), limit.X)
	offset.Y = min(max(offset.Y, 0), limit.Y)
	return offset
}

// Scrollbar configures scrollbar rendering.
type Scrollbar struct {
	Orientation  Orientation
	Track        backend.Style
	Thumb        backend.Style
	MinThumbSize int
	Chars        ScrollbarChars
}

// ScrollbarChars defines characters used to render the scrollbar.
type ScrollbarChars struct {
	Track rune
	Thumb rune
}

// DefaultScrollbarChars returns ASCII defaults.
func DefaultScrollbarChars() ScrollbarChars {
	return ScrollbarChars{
		Track: '|',
		Thumb: '#',
	}
}

// DefaultScrollbar returns a scrollbar in the muted and active styles.
func DefaultScrollbar(orientation Orientation) Scrollbar {
	return Scrollbar{
		Orientation:  orientation,
		Track:        backend.StyleMuted,
		Thumb:        backend.StyleActive,
		MinThumbSize: 1,
		Chars:        DefaultScrollbarChars(),
	}
}

// ThumbSpan returns the start and length of the thumb along a track of the
// view's length. ok is false when the content fits and no bar is needed.
func (s Scrollbar) ThumbSpan(v *Viewport) (start, length int, ok bool) {
	view, content, offset, limit := v.view.Y, v.content.Y, v.offset.Y, v.MaxOffset().Y
	if s.Orientation == Horizontal {
		view, content, offset, limit = v.view.X, v.content.X, v.offset.X, v.MaxOffset().X
	}
	if view <= 0 || content <= view {
		return 0, 0, false
	}
	length = min(max(view*view/content, s.MinThumbSize, 1), view)
	if limit > 0 {
		start = (view - length) * offset / limit
	}
	return start, length, true
}

// Render draws the bar for v starting at the local origin of ctx.
func (s Scrollbar) Render(ctx *runtime.RenderContext, v *Viewport) {
	if v == nil {
		return
	}
	start, length, ok := s.ThumbSpan(v)
	if !ok {
		return
	}
	track := v.view.Y
	if s.Orientation == Horizontal {
		track = v.view.X
	}
	for i := 0; i < track; i++ {
		cell := runtime.NewCell(s.Track, s.Chars.Track)
		if i >= start && i < start+length {
			cell = runtime.NewCell(s.Thumb, s.Chars.Thumb)
		}
		if s.Orientation == Horizontal {
			ctx.Set(i, 0, cell)
		} else {
			ctx.Set(0, i, cell)
		}
	}
}
